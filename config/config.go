package config

import (
	"image/color"

	"github.com/automoto/rally/shared/sim"
)

// ArenaConfig contains table layout and drawing values
type ArenaConfig struct {
	Width  int
	Height int

	// Maps
	MapDir     string // Directory of .tmx layouts inside the embedded assets
	DefaultMap string // Layout stem used when no other is chosen

	// Drawing
	BackgroundColor color.RGBA
	LineColor       color.RGBA
	CenterDash      float32 // Length of each centre line dash
	CenterGap       float32 // Gap between dashes
	CenterLineWidth float32
}

// PaddleConfig contains paddle dimensions, speeds and colors
type PaddleConfig struct {
	Width  int
	Height int
	Inset  int // Distance from the side wall

	PlayerSpeed   float64 // Units per frame
	OpponentSpeed float64 // Units per frame, used by auto-tracking

	PlayerColor   color.RGBA
	OpponentColor color.RGBA
}

// BallConfig contains ball dimensions and serve speeds
type BallConfig struct {
	Width      int
	Height     int
	BaseSpeedX float64
	BaseSpeedY float64
	Color      color.RGBA
}

// MatchConfig contains scoring rules
type MatchConfig struct {
	WinningScore  int
	ReplayPrompt  bool // Offer best-of-3/5/7 after a match instead of a plain restart
	DefaultBestOf int  // Highlighted format in the replay panel
}

// HUDConfig contains in-match overlay values
type HUDConfig struct {
	ScoreY          float64
	ScoreColor      color.RGBA
	RallyColor      color.RGBA
	HintColor       color.RGBA
	ScorePopScale   float32 // Peak scale of a score digit right after a point
	ScorePopSeconds float32
	RallyMinShown   int // Rally counter is hidden below this many hits
}

type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	HintY        float64
	FadeSeconds  float32 // Overlay fade-in duration
	PlayerWins   string
	OpponentWins string
	RestartHint  string
	ReplayHint   string
}

type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
}

type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to a match
	ShowColliders bool // Outline collision boxes
}

type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config
var Arena ArenaConfig
var Paddle PaddleConfig
var Ball BallConfig
var Match MatchConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Arena = ArenaConfig{
		Width:           800,
		Height:          600,
		MapDir:          "arenas",
		DefaultMap:      "classic",
		BackgroundColor: color.RGBA{A: 255},
		LineColor:       Grey,
		CenterDash:      12,
		CenterGap:       10,
		CenterLineWidth: 2,
	}

	Paddle = PaddleConfig{
		Width:         10,
		Height:        100,
		Inset:         10,
		PlayerSpeed:   7,
		OpponentSpeed: 6,
		PlayerColor:   White,
		OpponentColor: White,
	}

	Ball = BallConfig{
		Width:      7,
		Height:     7,
		BaseSpeedX: 5.0,
		BaseSpeedY: 3.0,
		Color:      White,
	}

	Match = MatchConfig{
		WinningScore:  5,
		ReplayPrompt:  true,
		DefaultBestOf: 5,
	}

	HUD = HUDConfig{
		ScoreY:          50,
		ScoreColor:      White,
		RallyColor:      Grey,
		HintColor:       Grey,
		ScorePopScale:   1.6,
		ScorePopSeconds: 0.35,
		RallyMinShown:   3,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 12, B: 20, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            180,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightOrange,
		TextColor:    White,
		HintColor:    Grey,
		TitleY:       220,
		HintY:        300,
		FadeSeconds:  0.5,
		PlayerWins:   "Player Wins!",
		OpponentWins: "AI Wins!",
		RestartHint:  "Press R to restart",
		ReplayHint:   "Best of 3, 5 or 7? Press 3, 5 or 7",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Orange,
		MenuOptions:       []string{"RESUME", "RESTART", "MAIN MENU"},
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	Debug = DebugConfig{
		SkipMenu:      false,
		ShowColliders: false,
	}
}

// SimConfig builds a simulation config from the current global values.
func SimConfig() sim.Config {
	return sim.Config{
		ArenaWidth:          Arena.Width,
		ArenaHeight:         Arena.Height,
		PaddleWidth:         Paddle.Width,
		PaddleHeight:        Paddle.Height,
		PaddleInset:         Paddle.Inset,
		PlayerSpeed:         Paddle.PlayerSpeed,
		OpponentSpeed:       Paddle.OpponentSpeed,
		BallWidth:           Ball.Width,
		BallHeight:          Ball.Height,
		BaseSpeedX:          Ball.BaseSpeedX,
		BaseSpeedY:          Ball.BaseSpeedY,
		WinningScore:        Match.WinningScore,
		DisableReplayPrompt: !Match.ReplayPrompt,
	}
}
