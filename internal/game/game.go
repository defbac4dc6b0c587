package game

import (
	"errors"
	"fmt"
	"strings"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/events"
	"clueweb/internal/player"

	"github.com/sirupsen/logrus"
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// TurnFlags is what the current seat has done so far this turn.
type TurnFlags struct {
	HasMoved     bool
	HasSuggested bool
	HasAccused   bool
	UsedShortcut bool
}

// Game represents the state and logic of a single hot-seat session. All
// intents run synchronously; outbound notifications go through EventManager.
type Game struct {
	ID           string
	Config       *config.GameConfig
	Board        *board.Board
	Players      []*player.Player
	EventManager *events.Manager

	deck     *deck.Deck
	envelope deck.Envelope
	phase    Phase
	current  int
	turn     TurnFlags
	pending  *pendingClaim
	winner   int
	log      *logrus.Entry
}

func (g *Game) Phase() Phase        { return g.phase }
func (g *Game) CurrentSeat() int    { return g.current }
func (g *Game) Turn() TurnFlags     { return g.turn }
func (g *Game) Seats() int          { return len(g.Players) }
func (g *Game) Winner() (int, bool) { return g.winner, g.phase == PhaseFinished }
func (g *Game) CurrentPlayer() *player.Player {
	return g.Players[g.current]
}

// Solution reveals the envelope once the game is over.
func (g *Game) Solution() (deck.Claim, bool) {
	if g.phase != PhaseFinished {
		return deck.Claim{}, false
	}
	return g.envelope.Solution(), true
}

// VerifySeat checks a seat's password. It never changes state.
func (g *Game) VerifySeat(seat int, password string) bool {
	if seat < 0 || seat >= len(g.Players) {
		return false
	}
	return g.Players[seat].CheckPassword(password)
}

// FreeCharacters lists the suspects no seat has taken yet.
func (g *Game) FreeCharacters() []config.Suspect {
	var out []config.Suspect
	for _, s := range config.AllSuspects() {
		if g.ownerOf(s) == nil {
			out = append(out, s)
		}
	}
	return out
}

// AssignedCharacters lists the suspects held by a seat, in identity order.
func (g *Game) AssignedCharacters() []config.Suspect {
	var out []config.Suspect
	for _, s := range config.AllSuspects() {
		if g.ownerOf(s) != nil {
			out = append(out, s)
		}
	}
	return out
}

// SetupPlayer fills an empty seat with a username, a password and a character.
func (g *Game) SetupPlayer(seat int, username, password string, character config.Suspect) error {
	const action = "setup"
	if g.phase != PhaseSetup {
		return g.reject(seat, action, "The game has already started.")
	}
	if seat < 0 || seat >= len(g.Players) {
		return g.reject(seat, action, fmt.Sprintf("There is no seat %d.", seat))
	}
	if !character.Valid() {
		return g.reject(seat, action, "Unknown character.")
	}
	if owner := g.ownerOf(character); owner != nil {
		return g.reject(seat, action, fmt.Sprintf("%s is already taken by %s.", g.Config.SuspectName(character), owner.Username))
	}
	p := g.Players[seat]
	if err := p.Setup(username, password, g.Board.Character(character), g.Config.PasswordCost); err != nil {
		if errors.Is(err, player.ErrBlankUsername) || errors.Is(err, player.ErrBlankPassword) || errors.Is(err, player.ErrAlreadySetUp) {
			return g.reject(seat, action, err.Error())
		}
		return fmt.Errorf("failed to set up seat %d: %w", seat, err)
	}
	g.log.WithFields(logrus.Fields{"seat": seat, "character": character}).Debugf("Seat set up for %s", p.Username)
	return nil
}

// Start orders the seats so that Miss Scarlet's holder goes first, deals the
// cards and opens the first turn.
func (g *Game) Start() error {
	const action = "start"
	if g.phase != PhaseSetup {
		return g.reject(-1, action, "The game has already started.")
	}
	var missing []string
	for _, p := range g.Players {
		if !p.IsSetUp() {
			missing = append(missing, fmt.Sprint(p.Seat))
		}
	}
	if len(missing) > 0 {
		return g.reject(-1, action, fmt.Sprintf("Seats %s are not set up yet.", strings.Join(missing, ", ")))
	}

	g.orderSeats()

	hands := make([]*deck.Hand, len(g.Players))
	for i, p := range g.Players {
		hands[i] = p.Hand
	}
	if err := g.deck.Deal(hands); err != nil {
		g.log.WithError(err).Error("Dealing failed")
		return fmt.Errorf("failed to deal: %w", err)
	}
	if err := deck.CheckAccounting(g.envelope, hands, g.deck.Cards()); err != nil {
		g.log.WithError(err).Error("Card accounting failed after the deal")
		return err
	}

	g.phase = PhasePlaying
	g.current = 0
	g.turn = TurnFlags{}
	for _, p := range g.Players {
		g.log.Debugf("%s hand: %v", p, p.Hand.Cards())
		g.EventManager.Publish(events.HandDealtEvent{Seat: p.Seat, Cards: p.Hand.Cards()})
	}
	g.log.Infof("Game started with %d players", len(g.Players))
	g.EventManager.Publish(events.GameReadyEvent{GameID: g.ID, Seats: len(g.Players)})
	g.EventManager.Publish(events.TurnAdvancedEvent{Seat: g.current})
	return nil
}

// orderSeats rotates the table so Miss Scarlet's seat becomes seat 0. When no
// seat holds her the lowest suspect identity goes first. Cyclic order is kept.
func (g *Game) orderSeats() {
	first := 0
	for i, p := range g.Players {
		if p.Suspect() < g.Players[first].Suspect() {
			first = i
		}
	}
	rotated := append(append([]*player.Player{}, g.Players[first:]...), g.Players[:first]...)
	for i, p := range rotated {
		p.Seat = i
	}
	g.Players = rotated
}

func (g *Game) ownerOf(s config.Suspect) *player.Player {
	for _, p := range g.Players {
		if p.IsSetUp() && p.Suspect() == s {
			return p
		}
	}
	return nil
}

// reject logs and publishes an illegal action and returns it as an error.
func (g *Game) reject(seat int, action, reason string) error {
	g.log.WithFields(logrus.Fields{"seat": seat, "action": action}).Debugf("Rejected: %s", reason)
	g.EventManager.Publish(events.IllegalActionEvent{Seat: seat, Action: action, Reason: reason})
	return &IllegalActionError{Action: action, Reason: reason}
}

// guard rejects play intents outside the playing phase or while a disproof
// request is waiting for an answer.
func (g *Game) guard(action string) error {
	switch g.phase {
	case PhaseSetup:
		return g.reject(-1, action, "The game has not started yet.")
	case PhaseFinished:
		return g.reject(-1, action, "The game is over.")
	}
	if g.pending != nil {
		asked := g.Players[g.pending.asked]
		return g.reject(g.current, action, fmt.Sprintf("Waiting for %s to show a card.", asked.Username))
	}
	return nil
}
