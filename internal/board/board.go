package board

import (
	"errors"
	"fmt"

	"clueweb/internal/config"
)

// ErrMalformedLayout wraps every layout validation failure.
var ErrMalformedLayout = errors.New("malformed board layout")

// Board owns the tile graph and every token placed on it.
type Board struct {
	rows, cols int
	tiles      [][]*Tile
	rooms      map[config.Room]*Tile
	characters map[config.Suspect]*Character
	weapons    map[config.Weapon]*Weapon
}

// New builds a board in two passes: classify every cell, then link
// neighbors once all tiles exist.
func New(layout Layout) (*Board, error) {
	if len(layout.Rows) == 0 || len(layout.Rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedLayout)
	}
	b := &Board{
		rows:       len(layout.Rows),
		cols:       len([]rune(layout.Rows[0])),
		rooms:      make(map[config.Room]*Tile),
		characters: make(map[config.Suspect]*Character),
		weapons:    make(map[config.Weapon]*Weapon),
	}

	// 1. Classify and instantiate
	b.tiles = make([][]*Tile, b.rows)
	for r, line := range layout.Rows {
		codes := []rune(line)
		if len(codes) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLayout, r, len(codes), b.cols)
		}
		b.tiles[r] = make([]*Tile, b.cols)
		for c, code := range codes {
			kind, room, ok := classify(code)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell code %q at (%d,%d)", ErrMalformedLayout, code, r, c)
			}
			t := &Tile{Row: r, Col: c, Kind: kind}
			if kind == KindRoom {
				if _, dup := b.rooms[room]; dup {
					return nil, fmt.Errorf("%w: room %s appears twice", ErrMalformedLayout, room)
				}
				t.room = room
				b.rooms[room] = t
			}
			b.tiles[r][c] = t
		}
	}
	for _, room := range config.AllRooms() {
		if _, ok := b.rooms[room]; !ok {
			return nil, fmt.Errorf("%w: room %s is missing", ErrMalformedLayout, room)
		}
	}

	// 2. Link neighbors
	uncapped := make(map[config.Room]bool, len(layout.Uncapped))
	for _, room := range layout.Uncapped {
		uncapped[room] = true
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			b.link(b.tiles[r][c], uncapped)
		}
	}
	if err := b.linkShortcuts(layout.Shortcuts); err != nil {
		return nil, err
	}

	// 3. Start squares and characters
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			t := b.tiles[r][c]
			if t.Kind == KindStartSquare && len(b.NeighborsOf(t)) == 0 {
				return nil, fmt.Errorf("%w: start square %s has no hallway", ErrMalformedLayout, t.Position())
			}
		}
	}
	for _, s := range config.AllSuspects() {
		pos, ok := layout.Starts[s]
		if !ok {
			return nil, fmt.Errorf("%w: no start square for %s", ErrMalformedLayout, s)
		}
		t := b.TileAt(pos.Row, pos.Col)
		if t == nil || t.Kind != KindStartSquare {
			return nil, fmt.Errorf("%w: %s starts on %s, which is not a start square", ErrMalformedLayout, s, pos)
		}
		for _, other := range b.characters {
			if other.current == t {
				return nil, fmt.Errorf("%w: %s and %s share a start square", ErrMalformedLayout, s, other.id)
			}
		}
		b.characters[s] = &Character{id: s, current: t}
	}
	return b, nil
}

// MustNew is New for layouts that are part of the program.
func MustNew(layout Layout) *Board {
	b, err := New(layout)
	if err != nil {
		panic(err)
	}
	return b
}

// Classic builds the standard 7x7 board.
func Classic() *Board { return MustNew(ClassicLayout()) }

func (b *Board) link(t *Tile, uncapped map[config.Room]bool) {
	limit := neighborCap(t.Kind)
	if t.Kind == KindRoom && uncapped[t.room] {
		limit = len(t.neighbors)
	}
	kept := 0
	for _, d := range Directions() {
		if kept == limit {
			break
		}
		dr, dc := d.delta()
		n := b.TileAt(t.Row+dr, t.Col+dc)
		if n == nil || !CanLink(t.Kind, n.Kind) {
			continue
		}
		t.neighbors[d] = n
		kept++
	}
}

// linkShortcuts pairs corner rooms. A corner is a room on both the first or
// last room row and the first or last room column.
func (b *Board) linkShortcuts(pairs [][2]config.Room) error {
	for _, pair := range pairs {
		a, okA := b.rooms[pair[0]]
		z, okZ := b.rooms[pair[1]]
		if !okA || !okZ || a == z {
			return fmt.Errorf("%w: invalid shortcut %s-%s", ErrMalformedLayout, pair[0], pair[1])
		}
		for _, t := range []*Tile{a, z} {
			if !b.atRoomCorner(t) {
				return fmt.Errorf("%w: shortcut on non-corner room %s", ErrMalformedLayout, t.room)
			}
		}
		if a.shortcut != nil || z.shortcut != nil {
			return fmt.Errorf("%w: room in more than one shortcut (%s-%s)", ErrMalformedLayout, pair[0], pair[1])
		}
		a.shortcut, z.shortcut = z, a
		a.corner, z.corner = true, true
	}
	return nil
}

func (b *Board) atRoomCorner(t *Tile) bool {
	minR, maxR, minC, maxC := t.Row, t.Row, t.Col, t.Col
	for _, r := range b.rooms {
		minR, maxR = min(minR, r.Row), max(maxR, r.Row)
		minC, maxC = min(minC, r.Col), max(maxC, r.Col)
	}
	return (t.Row == minR || t.Row == maxR) && (t.Col == minC || t.Col == maxC)
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// TileAt is a bounds-checked lookup; out of range yields nil.
func (b *Board) TileAt(row, col int) *Tile {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return nil
	}
	return b.tiles[row][col]
}

// NeighborsOf returns the adjacent neighbors in direction order followed by the
// shortcut neighbor, if any.
func (b *Board) NeighborsOf(t *Tile) []*Tile {
	if t == nil {
		return nil
	}
	var out []*Tile
	for _, n := range t.neighbors {
		if n != nil {
			out = append(out, n)
		}
	}
	if t.shortcut != nil {
		out = append(out, t.shortcut)
	}
	return out
}

// Step returns the neighbor reached by moving in dir, or nil.
func (b *Board) Step(t *Tile, dir Direction) *Tile {
	if t == nil || dir < Up || dir > Right {
		return nil
	}
	return t.neighbors[dir]
}

// Room returns the tile of a room identity.
func (b *Board) Room(id config.Room) *Tile { return b.rooms[id] }

func (b *Board) IsCornerRoom(room *Tile) bool { return room.IsCorner() }

// OppositeCorner returns the shortcut destination of a corner room, or nil.
func (b *Board) OppositeCorner(room *Tile) *Tile {
	if !room.IsRoom() {
		return nil
	}
	return room.shortcut
}

// Character returns the token of a suspect.
func (b *Board) Character(id config.Suspect) *Character { return b.characters[id] }

// Weapon returns the token of a weapon, or nil before it is placed.
func (b *Board) Weapon(id config.Weapon) *Weapon { return b.weapons[id] }
