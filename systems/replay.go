package systems

import (
	"github.com/automoto/rally/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewReplayPrompt builds the best-of panel for this scene. Clicking a button
// selects the format the same way the number keys do.
func NewReplayPrompt(e *ecs.ECS, formats []int) *ui.ReplayUI {
	settings := GetOrCreateSettings(e)
	return ui.NewReplayUI(formats, settings.BestOf, func(bestOf int) {
		SelectReplayFormat(e, bestOf)
	})
}

// NewUpdateReplayPrompt runs the panel only while the match waits for a format.
func NewUpdateReplayPrompt(prompt *ui.ReplayUI) ecs.System {
	return func(e *ecs.ECS) {
		match := GetMatch(e)
		if match == nil || !match.Sim.AwaitingReplayChoice() {
			return
		}
		prompt.Highlight(GetOrCreateSettings(e).BestOf)
		prompt.UI.Update()
	}
}

// NewDrawReplayPrompt draws the panel over the winner overlay.
func NewDrawReplayPrompt(prompt *ui.ReplayUI) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		match := GetMatch(e)
		if match == nil || !match.Sim.AwaitingReplayChoice() {
			return
		}
		prompt.UI.Draw(screen)
	}
}
