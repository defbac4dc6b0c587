package board

import (
	"fmt"

	"clueweb/internal/config"
)

// TileKind is the closed set of cell variants on the board.
type TileKind int

const (
	KindOutOfBounds TileKind = iota
	KindStartSquare
	KindHallway
	KindRoom
)

func (k TileKind) String() string {
	switch k {
	case KindStartSquare:
		return "start square"
	case KindHallway:
		return "hallway"
	case KindRoom:
		return "room"
	default:
		return "out of bounds"
	}
}

// CanLink reports whether a tile of kind from may list a tile of kind to as a
// neighbor. Movement along the graph is legal only over such links.
func CanLink(from, to TileKind) bool {
	switch from {
	case KindStartSquare:
		return to == KindHallway
	case KindHallway:
		return to == KindRoom
	case KindRoom:
		return to == KindHallway
	default:
		return false
	}
}

// neighborCap is the maximum number of adjacent neighbors kept per kind.
// Rooms listed as uncapped in the layout keep all four.
func neighborCap(k TileKind) int {
	switch k {
	case KindStartSquare:
		return 1
	case KindHallway:
		return 2
	case KindRoom:
		return 3
	default:
		return 0
	}
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in neighbor order.
func Directions() []Direction { return []Direction{Up, Down, Left, Right} }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection accepts full names and single letters (u/d/l/r).
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	case "left", "l":
		return Left, true
	case "right", "r":
		return Right, true
	}
	return 0, false
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Tile is one cell of the board graph. Room-only and hallway-only state is
// meaningful only for the matching Kind.
type Tile struct {
	Row, Col int
	Kind     TileKind

	room   config.Room
	corner bool

	occupant *Character

	neighbors [4]*Tile
	shortcut  *Tile

	characters []*Character
	weapons    []*Weapon
}

func (t *Tile) Position() Position { return Position{Row: t.Row, Col: t.Col} }

// RoomID returns the room identity when the tile is a room.
func (t *Tile) RoomID() (config.Room, bool) {
	if t == nil || t.Kind != KindRoom {
		return 0, false
	}
	return t.room, true
}

func (t *Tile) IsRoom() bool { return t != nil && t.Kind == KindRoom }

// IsCorner reports whether the room has a shortcut to its opposite corner.
func (t *Tile) IsCorner() bool { return t != nil && t.corner }

// Occupied reports whether a character currently blocks this hallway.
func (t *Tile) Occupied() bool { return t != nil && t.Kind == KindHallway && t.occupant != nil }

// Occupant returns the character blocking the hallway, if any.
func (t *Tile) Occupant() *Character {
	if t == nil || t.Kind != KindHallway {
		return nil
	}
	return t.occupant
}

// Shortcut returns the opposite corner room or nil.
func (t *Tile) Shortcut() *Tile { return t.shortcut }

// Characters returns the room occupants in arrival order.
func (t *Tile) Characters() []*Character {
	out := make([]*Character, len(t.characters))
	copy(out, t.characters)
	return out
}

// Weapons returns the weapons lying in the room in arrival order.
func (t *Tile) Weapons() []*Weapon {
	out := make([]*Weapon, len(t.weapons))
	copy(out, t.weapons)
	return out
}

func (t *Tile) String() string {
	if t == nil {
		return "<none>"
	}
	if t.Kind == KindRoom {
		return fmt.Sprintf("%s %s", t.room.Key(), t.Position())
	}
	return fmt.Sprintf("%s %s", t.Kind, t.Position())
}

func (t *Tile) hasCharacter(c *Character) bool {
	for _, o := range t.characters {
		if o == c {
			return true
		}
	}
	return false
}

func (t *Tile) hasWeapon(w *Weapon) bool {
	for _, o := range t.weapons {
		if o == w {
			return true
		}
	}
	return false
}
