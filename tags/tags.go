package tags

import "github.com/yohamta/donburi"

var (
	Paddle = donburi.NewTag().SetName("Paddle")
	Ball   = donburi.NewTag().SetName("Ball")
)
