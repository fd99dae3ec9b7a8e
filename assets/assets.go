package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/arena"
)

//go:embed arenas/*.tmx
var assetFS embed.FS

// FS exposes the embedded asset tree to other shells.
func FS() fs.FS {
	return assetFS
}

// ArenaLoader caches parsed arena layouts by name.
type ArenaLoader struct {
	fsys    fs.FS
	dir     string
	layouts map[string]*arena.Layout
	names   []string
}

func NewArenaLoader(fsys fs.FS, dir string) *ArenaLoader {
	return &ArenaLoader{fsys: fsys, dir: dir}
}

func (l *ArenaLoader) load() error {
	if l.layouts != nil {
		return nil
	}
	layouts, names, err := arena.LoadAllLayouts(l.fsys, l.dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no arena files found in %s", l.dir)
	}
	l.layouts = layouts
	l.names = names
	return nil
}

// Names returns the sorted layout names.
func (l *ArenaLoader) Names() ([]string, error) {
	if err := l.load(); err != nil {
		return nil, err
	}
	return l.names, nil
}

// Layout returns the named layout.
func (l *ArenaLoader) Layout(name string) (*arena.Layout, error) {
	if err := l.load(); err != nil {
		return nil, err
	}
	layout, ok := l.layouts[name]
	if !ok {
		return nil, fmt.Errorf("arena %q not found in %s", name, l.dir)
	}
	return layout, nil
}

var arenaLoader = NewArenaLoader(assetFS, config.Arena.MapDir)

// ArenaNames lists the embedded arenas.
func ArenaNames() ([]string, error) {
	return arenaLoader.Names()
}

// LoadArena returns the embedded arena with the given name.
func LoadArena(name string) (*arena.Layout, error) {
	return arenaLoader.Layout(name)
}

// ArenaPath returns the embedded path of a layout.
func ArenaPath(name string) string {
	return path.Join(config.Arena.MapDir, name+".tmx")
}
