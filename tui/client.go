// Package tui plays a rally in the terminal: tcell draws the table scaled to
// the grid and beep plays the sound effects.
package tui

import (
	"sync"
	"time"
	"unicode"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/sim"
	"github.com/gdamore/tcell/v2"
)

// holdFrames is how long one key press keeps a paddle moving. Terminals
// report no key releases, so a held key shows up as repeated presses.
const holdFrames = 8

type Client struct {
	screen tcell.Screen
	sim    *sim.Simulation
	sound  *Sound
	tick   time.Duration

	held map[sim.Direction]int

	quit     chan struct{}
	quitOnce sync.Once
}

// NewClient wires a simulation to screen. sound may be nil.
func NewClient(screen tcell.Screen, s *sim.Simulation, sound *Sound, tickRate int) *Client {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Client{
		screen: screen,
		sim:    s,
		sound:  sound,
		tick:   time.Second / time.Duration(tickRate),
		held:   map[sim.Direction]int{sim.Up: 0, sim.Down: 0},
		quit:   make(chan struct{}),
	}
}

// Run processes input and steps the simulation until Quit.
func (c *Client) Run() error {
	events := make(chan tcell.Event, 16)
	go c.screen.ChannelEvents(events, c.quit)

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-c.quit:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				c.HandleKey(ev)
			case *tcell.EventResize:
				c.screen.Sync()
			}
		case <-ticker.C:
			c.Step()
			c.Draw()
			c.screen.Show()
		}
	}
}

// HandleKey applies one key press.
func (c *Client) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.Quit()
	case tcell.KeyUp:
		c.held[sim.Up] = holdFrames
	case tcell.KeyDown:
		c.held[sim.Down] = holdFrames
	case tcell.KeyRune:
		c.handleRune(unicode.ToLower(ev.Rune()))
	}
}

func (c *Client) handleRune(r rune) {
	switch r {
	case 'w':
		c.held[sim.Up] = holdFrames
	case 's':
		c.held[sim.Down] = holdFrames
	case 'r':
		c.sim.ResetMatch()
	case '3', '5', '7':
		c.sim.SelectReplayFormat(int(r - '0'))
	case 'm':
		if c.sound != nil {
			c.sound.ToggleMute()
		}
	case 'q':
		c.Quit()
	}
}

// Step advances one frame and plays the tones for its events.
func (c *Client) Step() []sim.Event {
	for dir, frames := range c.held {
		c.sim.SetMoveIntent(dir, frames > 0)
		if frames > 0 {
			c.held[dir] = frames - 1
		}
	}

	events := c.sim.Step()
	if c.sound != nil {
		for _, ev := range events {
			c.sound.Play(config.SoundForEvent(ev))
		}
	}
	return events
}

// Draw renders the current frame without showing it.
func (c *Client) Draw() {
	muted := c.sound != nil && c.sound.Muted()
	Draw(c.screen, c.sim.Snapshot(), muted)
}

// Quit ends Run. It is safe to call more than once.
func (c *Client) Quit() {
	c.quitOnce.Do(func() { close(c.quit) })
}

// Done is closed once Quit has been called.
func (c *Client) Done() <-chan struct{} {
	return c.quit
}
