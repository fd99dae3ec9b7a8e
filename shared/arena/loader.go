package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrBadLayout is wrapped when a map parses but describes an unusable table.
var ErrBadLayout = errors.New("bad arena layout")

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS for maps on disk.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:         strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Title:        arenaMap.Properties.GetString("title"),
		Width:        arenaMap.Width * arenaMap.TileWidth,
		Height:       arenaMap.Height * arenaMap.TileHeight,
		WinningScore: arenaMap.Properties.GetInt("winningScore"),
	}
	if layout.Title == "" {
		layout.Title = layout.Name
	}

	var player, opponent, ball *tiled.Object
	for _, og := range arenaMap.ObjectGroups {
		if og.Name != GroupName {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case PlayerPaddle:
				player = o
			case OpponentPaddle:
				opponent = o
			case BallSpawn:
				ball = o
			}
		}
	}

	switch {
	case player == nil:
		return nil, fmt.Errorf("%w: %s has no %s object", ErrBadLayout, tmxPath, PlayerPaddle)
	case opponent == nil:
		return nil, fmt.Errorf("%w: %s has no %s object", ErrBadLayout, tmxPath, OpponentPaddle)
	case ball == nil:
		return nil, fmt.Errorf("%w: %s has no %s object", ErrBadLayout, tmxPath, BallSpawn)
	}

	layout.PaddleWidth = int(player.Width)
	layout.PaddleHeight = int(player.Height)
	layout.PaddleInset = int(player.X)
	layout.BallWidth = int(ball.Width)
	layout.BallHeight = int(ball.Height)

	// Paddles mirror each other across the vertical centre line.
	mirrored := int(opponent.X) == layout.Width-layout.PaddleInset-layout.PaddleWidth
	if !mirrored || int(opponent.Width) != layout.PaddleWidth || int(opponent.Height) != layout.PaddleHeight {
		return nil, fmt.Errorf("%w: %s paddles are not mirrored", ErrBadLayout, tmxPath)
	}

	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in dir within fsys and returns them
// keyed by stem name, plus the sorted list of names.
func LoadAllLayouts(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
