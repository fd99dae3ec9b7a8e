package headless

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/automoto/rally/shared/sim"
	"github.com/fogleman/gg"
)

var (
	tableColor = color.RGBA{A: 255}
	lineColor  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	bodyColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RenderSnapshot draws one frame of the table at arena scale.
func RenderSnapshot(snap sim.Snapshot) image.Image {
	return renderContext(snap).Image()
}

func renderContext(snap sim.Snapshot) *gg.Context {
	dc := gg.NewContext(snap.ArenaWidth, snap.ArenaHeight)
	w, h := float64(snap.ArenaWidth), float64(snap.ArenaHeight)

	dc.SetColor(tableColor)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(lineColor)
	dc.SetLineWidth(2)
	dc.SetDash(12, 10)
	dc.DrawLine(w/2, 0, w/2, h)
	dc.Stroke()
	dc.SetDash()

	dc.SetColor(bodyColor)
	for _, r := range []sim.Rect{snap.Player, snap.Opponent, snap.Ball} {
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		dc.Fill()
	}

	dc.DrawStringAnchored(fmt.Sprintf("%d", snap.PlayerScore), w/4, 40, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%d", snap.OpponentScore), 3*w/4, 40, 0.5, 0.5)

	return dc
}

// WritePNG encodes the frame for snap as PNG.
func WritePNG(w io.Writer, snap sim.Snapshot) error {
	return renderContext(snap).EncodePNG(w)
}

// SavePNG writes the frame for snap to path.
func SavePNG(path string, snap sim.Snapshot) error {
	if err := gg.SavePNG(path, RenderSnapshot(snap)); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
