package components

import (
	"image/color"

	"github.com/automoto/rally/shared/sim"
	"github.com/yohamta/donburi"
)

// BodyData mirrors one simulation body for drawing.
type BodyData struct {
	Rect  sim.Rect
	Color color.RGBA
}

var Body = donburi.NewComponentType[BodyData]()

// SideData marks which paddle an entity draws.
type SideData struct {
	Side sim.Side
}

var Side = donburi.NewComponentType[SideData]()
