package cli

import (
	"fmt"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/events"
	"clueweb/internal/game"
)

// Renderer implements the events.Listener interface to print public game
// events to the shared screen. Private details such as revealed cards are
// never printed here.
type Renderer struct {
	cfg   *config.GameConfig
	game  *game.Game
	turns int
}

func NewRenderer(cfg *config.GameConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Attach gives the renderer the game it reports on, for names and tiles.
func (r *Renderer) Attach(g *game.Game) {
	r.game = g
	r.turns = 0
}

// Turns returns how many turns have started so far.
func (r *Renderer) Turns() int { return r.turns }

// HandleEvent is the central dispatcher for rendering events.
func (r *Renderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.HandDealtEvent:
		C.Info.Printf("%s receives %d cards.\n", r.name(event.Seat), len(event.Cards))
	case events.GameReadyEvent:
		C.Header.Printf("\n--- Game %s ready with %d players ---\n", event.GameID, event.Seats)
	case events.IllegalActionEvent:
		C.Warn.Println(event.Reason)
	case events.TokenMovedEvent:
		switch {
		case event.Undo:
			C.Info.Printf("%s takes back the move to %s.\n", r.name(event.Seat), r.tileName(event.To))
		case event.Shortcut:
			C.Info.Printf("%s takes the secret passage to the %s.\n", r.name(event.Seat), r.tileName(event.To))
		default:
			C.Info.Printf("%s moves to %s.\n", r.name(event.Seat), r.tileName(event.To))
		}
	case events.WeaponMovedEvent:
		C.Info.Printf("The %s is moved to %s.\n", r.cfg.WeaponName(event.Weapon), r.tileName(event.To))
	case events.TurnAdvancedEvent:
		r.turns++
		C.Header.Printf("\n--- Turn %d: %s ---\n", r.turns, r.name(event.Seat))
	case events.SuggestionMadeEvent:
		C.Info.Printf("%s suggests %s.\n", r.name(event.Seat), r.claim(event.Claim))
	case events.AccusationMadeEvent:
		C.Header.Printf("%s accuses %s!\n", r.name(event.Seat), r.claim(event.Claim))
	case events.DisproofRequestEvent:
		C.Info.Printf("-> %s holds a matching card.\n", r.name(event.Asked))
	case events.ClaimPassedEvent:
		C.Info.Printf("-> %s cannot disprove.\n", r.name(event.Seat))
	case events.ClaimDisprovedEvent:
		C.Info.Printf("-> %s shows a card to %s.\n", r.name(event.Disprover), r.name(event.Originator))
	case events.ClaimUnrefutedEvent:
		C.Info.Printf("-> Nobody could disprove %s.\n", r.name(event.Originator))
	case events.PlayerEliminatedEvent:
		C.No.Printf("The accusation is INCORRECT! %s is out of the game.\n", r.name(event.Seat))
	case events.GameWonEvent:
		r.renderGameResult(event)
	}
}

func (r *Renderer) renderGameResult(event events.GameWonEvent) {
	C.Header.Println("\n--- GAME OVER ---")
	if event.LastStanding {
		C.Yes.Printf("%s is the last detective standing and wins!\n", r.name(event.Winner))
	} else {
		C.Yes.Printf("The accusation is CORRECT! %s wins!\n", r.name(event.Winner))
	}
	C.Info.Printf("The correct solution was %s.\n", r.claim(event.Solution))
}

func (r *Renderer) name(seat int) string {
	if r.game == nil || seat < 0 || seat >= len(r.game.Players) {
		return fmt.Sprintf("Seat %d", seat+1)
	}
	p := r.game.Players[seat]
	if !p.IsSetUp() {
		return fmt.Sprintf("Seat %d", seat+1)
	}
	return ColorizeSuspect(p.Suspect(), p.Username)
}

func (r *Renderer) claim(c deck.Claim) string {
	return fmt.Sprintf("%s with the %s in the %s",
		ColorizeSuspect(c.Suspect, r.cfg.SuspectName(c.Suspect)), r.cfg.WeaponName(c.Weapon), r.cfg.RoomName(c.Room))
}

func (r *Renderer) tileName(pos board.Position) string {
	if r.game == nil {
		return pos.String()
	}
	tile := r.game.Board.TileAt(pos.Row, pos.Col)
	if id, ok := tile.RoomID(); ok {
		return "the " + r.cfg.RoomName(id)
	}
	return fmt.Sprintf("the %s at %s", tile.Kind, pos)
}
