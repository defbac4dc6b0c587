package board

import (
	"errors"
	"fmt"

	"clueweb/internal/config"
)

var (
	ErrHallwayOccupied = errors.New("hallway is occupied")
	ErrNothingToUndo   = errors.New("no previous tile to return to")
	ErrNotARoom        = errors.New("tile is not a room")
	ErrNoTile          = errors.New("no tile")
)

// Character is a suspect's piece. It remembers one previous tile for undo.
type Character struct {
	id       config.Suspect
	current  *Tile
	previous *Tile
}

func (c *Character) ID() config.Suspect { return c.id }
func (c *Character) Current() *Tile     { return c.current }
func (c *Character) Previous() *Tile    { return c.previous }

// Weapon is a weapon token. It always lies in a room.
type Weapon struct {
	id      config.Weapon
	current *Tile
}

func (w *Weapon) ID() config.Weapon { return w.id }
func (w *Weapon) Current() *Tile    { return w.current }

// MoveCharacter moves c onto to, keeping room lists and hallway occupancy in
// step. Adjacency is the caller's concern; occupancy is checked here.
func (b *Board) MoveCharacter(c *Character, to *Tile) error {
	if to == nil {
		return ErrNoTile
	}
	if to.Kind == KindHallway && to.occupant != nil && to.occupant != c {
		return fmt.Errorf("%s: %w", to.Position(), ErrHallwayOccupied)
	}
	from := c.current
	leave(c, from)
	enter(c, to)
	c.previous = from
	c.current = to
	return nil
}

// UndoCharacter returns c to its previous tile and forgets it.
func (b *Board) UndoCharacter(c *Character) error {
	prev := c.previous
	if prev == nil {
		return ErrNothingToUndo
	}
	if prev.Kind == KindHallway && prev.occupant != nil && prev.occupant != c {
		return fmt.Errorf("%s: %w", prev.Position(), ErrHallwayOccupied)
	}
	leave(c, c.current)
	enter(c, prev)
	c.current = prev
	c.previous = nil
	return nil
}

// RelocateCharacter pulls c into a room regardless of adjacency. The pulled
// character has nothing to undo afterwards.
func (b *Board) RelocateCharacter(c *Character, room *Tile) error {
	if !room.IsRoom() {
		return ErrNotARoom
	}
	if c.current == room {
		return nil
	}
	leave(c, c.current)
	enter(c, room)
	c.current = room
	c.previous = nil
	return nil
}

// ClearUndo drops the character's undo memory.
func (b *Board) ClearUndo(c *Character) { c.previous = nil }

// ReleaseCharacter frees the hallway c is standing in without moving it.
func (b *Board) ReleaseCharacter(c *Character) {
	if t := c.current; t != nil && t.Kind == KindHallway && t.occupant == c {
		t.occupant = nil
	}
}

// PlaceWeapon puts a weapon into a room, creating the token on first use.
func (b *Board) PlaceWeapon(id config.Weapon, room *Tile) error {
	if !room.IsRoom() {
		return ErrNotARoom
	}
	w, ok := b.weapons[id]
	if !ok {
		w = &Weapon{id: id}
		b.weapons[id] = w
	}
	if w.current == room {
		return nil
	}
	if old := w.current; old != nil {
		for i, o := range old.weapons {
			if o == w {
				old.weapons = append(old.weapons[:i], old.weapons[i+1:]...)
				break
			}
		}
	}
	room.weapons = append(room.weapons, w)
	w.current = room
	return nil
}

func leave(c *Character, t *Tile) {
	if t == nil {
		return
	}
	switch t.Kind {
	case KindRoom:
		for i, o := range t.characters {
			if o == c {
				t.characters = append(t.characters[:i], t.characters[i+1:]...)
				break
			}
		}
	case KindHallway:
		if t.occupant == c {
			t.occupant = nil
		}
	}
}

func enter(c *Character, t *Tile) {
	switch t.Kind {
	case KindRoom:
		if !t.hasCharacter(c) {
			t.characters = append(t.characters, c)
		}
	case KindHallway:
		t.occupant = c
	}
}
