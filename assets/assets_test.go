package assets

import (
	"testing"

	"github.com/automoto/rally/config"
)

func TestEmbeddedArenasLoad(t *testing.T) {
	names, err := ArenaNames()
	if err != nil {
		t.Fatalf("ArenaNames: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("expected at least 2 arenas, got %v", names)
	}

	layout, err := LoadArena(config.Arena.DefaultMap)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if layout.Width != config.Arena.Width || layout.Height != config.Arena.Height {
		t.Errorf("expected default arena %dx%d, got %dx%d",
			config.Arena.Width, config.Arena.Height, layout.Width, layout.Height)
	}

	cfg := config.SimConfig()
	for _, name := range names {
		l, err := LoadArena(name)
		if err != nil {
			t.Fatalf("LoadArena(%s): %v", name, err)
		}
		c := cfg
		l.Apply(&c)
		if err := c.Validate(); err != nil {
			t.Errorf("arena %s yields invalid config: %v", name, err)
		}
	}
}

func TestLoadArenaUnknown(t *testing.T) {
	if _, err := LoadArena("nope"); err == nil {
		t.Error("expected error for unknown arena")
	}
}

func TestArenaPath(t *testing.T) {
	if got := ArenaPath("classic"); got != "arenas/classic.tmx" {
		t.Errorf("expected arenas/classic.tmx, got %s", got)
	}
}
