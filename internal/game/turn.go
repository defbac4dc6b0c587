package game

import (
	"errors"

	"clueweb/internal/board"
	"clueweb/internal/events"

	"github.com/sirupsen/logrus"
)

// Move steps the current character one tile in dir. Only one move is allowed
// per turn.
func (g *Game) Move(dir board.Direction) error {
	const action = "move"
	if err := g.guard(action); err != nil {
		return err
	}
	c := g.CurrentPlayer().Character
	from := c.Current()
	if g.turn.HasMoved {
		return g.reject(g.current, action, "You have already moved this turn.")
	}
	to := g.Board.Step(from, dir)
	if to == nil {
		switch from.Kind {
		case board.KindStartSquare:
			return g.reject(g.current, action, "From your starting square you can only move into the hallway next to it.")
		case board.KindHallway:
			return g.reject(g.current, action, "From a hallway you can only move into an adjacent room.")
		default:
			return g.reject(g.current, action, "There is no hallway in that direction.")
		}
	}
	if to.Occupied() {
		return g.reject(g.current, action, "That hallway is occupied.")
	}
	if err := g.Board.MoveCharacter(c, to); err != nil {
		return g.reject(g.current, action, err.Error())
	}
	g.turn.HasMoved = true
	g.log.WithFields(logrus.Fields{"seat": g.current, "from": from.Position(), "to": to.Position()}).Debug("Moved")
	g.EventManager.Publish(events.TokenMovedEvent{
		Seat:      g.current,
		Character: c.ID(),
		From:      from.Position(),
		To:        to.Position(),
	})
	return nil
}

// UseShortcut takes the secret passage from a corner room to the opposite
// corner. It counts as the turn's move.
func (g *Game) UseShortcut() error {
	const action = "shortcut"
	if err := g.guard(action); err != nil {
		return err
	}
	c := g.CurrentPlayer().Character
	from := c.Current()
	if g.turn.HasMoved {
		return g.reject(g.current, action, "You have already moved this turn.")
	}
	if !g.Board.IsCornerRoom(from) {
		return g.reject(g.current, action, "You must be in a corner room to take a shortcut.")
	}
	to := g.Board.OppositeCorner(from)
	if err := g.Board.MoveCharacter(c, to); err != nil {
		return g.reject(g.current, action, err.Error())
	}
	g.turn.HasMoved = true
	g.turn.UsedShortcut = true
	g.log.WithFields(logrus.Fields{"seat": g.current, "from": from, "to": to}).Debug("Took shortcut")
	g.EventManager.Publish(events.TokenMovedEvent{
		Seat:      g.current,
		Character: c.ID(),
		From:      from.Position(),
		To:        to.Position(),
		Shortcut:  true,
	})
	return nil
}

// UndoMove returns the current character to where it stood before this
// turn's move. A suggestion commits the move.
func (g *Game) UndoMove() error {
	const action = "undo"
	if err := g.guard(action); err != nil {
		return err
	}
	if !g.turn.HasMoved {
		return g.reject(g.current, action, "You have not moved this turn.")
	}
	if g.turn.HasSuggested {
		return g.reject(g.current, action, "You cannot undo a move after making a suggestion.")
	}
	c := g.CurrentPlayer().Character
	from := c.Current()
	if err := g.Board.UndoCharacter(c); err != nil {
		switch {
		case errors.Is(err, board.ErrHallwayOccupied):
			return g.reject(g.current, action, "Your previous hallway is now occupied.")
		case errors.Is(err, board.ErrNothingToUndo):
			return g.reject(g.current, action, "There is nothing to undo.")
		}
		return err
	}
	g.turn.HasMoved = false
	g.turn.UsedShortcut = false
	g.log.WithField("seat", g.current).Debug("Move undone")
	g.EventManager.Publish(events.TokenMovedEvent{
		Seat:      g.current,
		Character: c.ID(),
		From:      from.Position(),
		To:        c.Current().Position(),
		Undo:      true,
	})
	return nil
}

// EndTurn passes play to the next active seat.
func (g *Game) EndTurn() error {
	const action = "end turn"
	if err := g.guard(action); err != nil {
		return err
	}
	tile := g.CurrentPlayer().Character.Current()
	switch tile.Kind {
	case board.KindStartSquare:
		return g.reject(g.current, action, "You must move off your starting square first.")
	case board.KindHallway:
		if !g.turn.HasMoved {
			return g.reject(g.current, action, "You must move into a room before ending your turn.")
		}
	case board.KindRoom:
		if !g.turn.HasMoved && !g.turn.HasSuggested && !g.trapped(tile) {
			return g.reject(g.current, action, "You must move or make a suggestion before ending your turn.")
		}
	}
	g.advanceTurn()
	return nil
}

// trapped reports whether a room has no free way out this turn.
func (g *Game) trapped(room *board.Tile) bool {
	for _, n := range g.Board.NeighborsOf(room) {
		if n.IsRoom() || !n.Occupied() {
			return false
		}
	}
	return true
}

// advanceTurn closes the current seat's turn and hands it to the next active
// seat in cyclic order.
func (g *Game) advanceTurn() {
	p := g.CurrentPlayer()
	g.Board.ClearUndo(p.Character)
	p.SetPulledBySuggestion(false)
	g.turn = TurnFlags{}

	n := len(g.Players)
	for i := 1; i <= n; i++ {
		next := (g.current + i) % n
		if g.Players[next].Active() {
			g.current = next
			break
		}
	}
	g.log.WithField("seat", g.current).Debugf("Turn passes to %s", g.CurrentPlayer())
	g.EventManager.Publish(events.TurnAdvancedEvent{Seat: g.current})
}
