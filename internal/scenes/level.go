// Package scenes builds world content from text layouts. Scene packages
// register themselves with the registry and describe their level as rows of
// tiles; Build turns those rows into entities.
package scenes

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

// Layout tiles.
const (
	TileEmpty    = ' '
	TileWall     = '#'
	TileLedge    = '='
	TileCoin     = 'o'
	TileCrate    = 'x'
	TilePlayer   = '@'
	TileBeacon   = '*'
	TileInfoSign = '?'
)

// ErrNoPlayer is returned for a layout without a player tile.
var ErrNoPlayer = errors.New("layout has no player tile")

// Level is the result of building a layout.
type Level struct {
	Width  int
	Height int
	Player *world.Entity
}

// Build spawns the entities described by rows. Row 0 is the top of the
// level and the last row rests on the floor, so a tile in row r of n rows
// has its top edge at world y = n - r. Runs of wall or ledge tiles become a
// single wide entity. The world's scroll limit is derived from the widest
// row.
func Build(e *engine.Engine, rows []string) (*Level, error) {
	lvl := &Level{Height: len(rows)}
	n := len(rows)

	for r, row := range rows {
		y := float64(n - r)
		tiles := []rune(row)
		lvl.Width = core.Max(lvl.Width, len(tiles))

		for x := 0; x < len(tiles); x++ {
			switch tiles[x] {
			case TileWall, TileLedge:
				start := x
				for x+1 < len(tiles) && tiles[x+1] == tiles[start] {
					x++
				}
				e.Spawn(solid(tiles[start], start, y, x-start+1))

			case TileCoin:
				e.Spawn(coin(x, y))

			case TileCrate:
				crate := world.NewEntity(float64(x), y, 1, 1, core.AttribPhysics)
				crate.Sprite = world.Sprite{Glyph: '▣', Color: core.ColorOrange}
				e.Spawn(crate)

			case TileBeacon:
				e.Spawn(beacon(x, y))

			case TileInfoSign:
				sign := world.NewEntity(float64(x), y, 1, 1, core.AttribStatic|core.AttribText)
				sign.Sprite = world.Sprite{Glyph: '?', Color: core.ColorCyan}
				e.Spawn(sign)

			case TilePlayer:
				if lvl.Player != nil {
					return nil, fmt.Errorf("scenes: second player tile at %d,%d", x, r)
				}
				p := world.NewEntity(float64(x), y, 1, 1, core.AttribPlayer)
				p.Sprite = world.Sprite{Glyph: '@', Color: core.ColorYellow}
				e.Spawn(p)
				lvl.Player = p

			case TileEmpty:
			default:
				return nil, fmt.Errorf("scenes: unknown tile %q at %d,%d", tiles[x], x, r)
			}
		}
	}

	if lvl.Player == nil {
		return nil, ErrNoPlayer
	}
	e.World.SetLevelWidth(lvl.Width, e.Window.Width)
	return lvl, nil
}

func solid(tile rune, x int, y float64, w int) *world.Entity {
	ent := world.NewEntity(float64(x), y, w, 1, core.AttribStatic)
	if tile == TileLedge {
		ent.Sprite = world.Sprite{Glyph: '▔', Color: core.ColorGreen}
	} else {
		ent.Sprite = world.Sprite{Glyph: '█', Color: core.ColorGray}
	}
	return ent
}

func coin(x int, y float64) *world.Entity {
	ent := world.NewEntity(float64(x), y, 1, 1, core.AttribNone)
	ent.Sprite = world.Sprite{
		Color:     core.ColorYellow,
		Frames:    []rune{'o', 'O', '0', 'O'},
		FrameTime: 0.15,
	}
	return ent
}

func beacon(x int, y float64) *world.Entity {
	ent := world.NewEntity(float64(x), y, 1, 1, core.AttribNone)
	ent.Sprite = world.Sprite{
		Color:     core.ColorRed,
		Frames:    []rune{'*', '+'},
		FrameTime: 0.5,
	}
	return ent
}

// Backdrop adds a parallax layer pinned to a screen row. Parallax entities
// keep their screen position while the camera scrolls.
func Backdrop(e *engine.Engine, row int, pattern string, c core.Color) {
	width := e.Window.Width
	tiles := []rune(pattern)
	if len(tiles) == 0 || width <= 0 {
		return
	}
	for x := 0; x < width; x += len(tiles) {
		for i, r := range tiles {
			if r == ' ' || x+i >= width {
				continue
			}
			ent := world.NewEntity(0, 0, 1, 1, core.AttribNone)
			ent.Screen = core.NewRect(x+i, row, 1, 1)
			ent.Sprite = world.Sprite{Glyph: r, Color: c}
			e.World.AddParallax(ent)
		}
	}
}

// HUD adds a screen-anchored UI entity in the top-right corner.
func HUD(e *engine.Engine, glyph rune, c core.Color) *world.Entity {
	ent := world.NewEntity(0, 0, 1, 1, core.AttribUI)
	ent.Screen = core.NewRect(e.Window.Width-2, 0, 1, 1)
	ent.Sprite = world.Sprite{Glyph: glyph, Color: c}
	e.World.Add(ent)
	return ent
}
