package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	buttonIdle      = color.RGBA{60, 60, 80, 255}
	buttonHighlight = color.RGBA{80, 80, 140, 255}
	buttonHover     = color.RGBA{100, 100, 160, 255}
	buttonPressed   = color.RGBA{40, 40, 60, 255}
)

// ReplayUI is the best-of-N panel shown after a match ends.
type ReplayUI struct {
	UI *ebitenui.UI

	OnSelect func(bestOf int)

	buttons     map[int]*widget.Button
	highlighted int

	normalFace text.Face
	smallFace  text.Face
}

func NewReplayUI(formats []int, highlighted int, onSelect func(bestOf int)) *ReplayUI {
	ui := &ReplayUI{
		OnSelect:    onSelect,
		buttons:     make(map[int]*widget.Button, len(formats)),
		highlighted: highlighted,
	}
	ui.loadFonts()
	ui.buildUI(formats)
	return ui
}

func (ui *ReplayUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *ReplayUI) buildUI(formats []int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: 120},
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Play again?", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	for _, bestOf := range formats {
		row.AddChild(ui.buildFormatButton(bestOf))
	}
	contentContainer.AddChild(row)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ReplayUI) buildFormatButton(bestOf int) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(buttonImage(bestOf == ui.highlighted)),
		widget.ButtonOpts.Text(FormatLabel(bestOf), &ui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Disabled: color.RGBA{80, 80, 80, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(bestOf)
			}
		}),
	)
	ui.buttons[bestOf] = btn
	return btn
}

func buttonImage(highlight bool) *widget.ButtonImage {
	idle := buttonIdle
	if highlight {
		idle = buttonHighlight
	}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(buttonHover),
		Pressed:  image.NewNineSliceColor(buttonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Highlight marks bestOf as the suggested format.
func (ui *ReplayUI) Highlight(bestOf int) {
	if bestOf == ui.highlighted {
		return
	}
	if btn, ok := ui.buttons[ui.highlighted]; ok {
		btn.SetImage(buttonImage(false))
	}
	if btn, ok := ui.buttons[bestOf]; ok {
		btn.SetImage(buttonImage(true))
	}
	ui.highlighted = bestOf
}

// Highlighted returns the suggested format.
func (ui *ReplayUI) Highlighted() int {
	return ui.highlighted
}

// FormatLabel is the button caption for a best-of-N format.
func FormatLabel(bestOf int) string {
	return fmt.Sprintf("Best of %d", bestOf)
}
