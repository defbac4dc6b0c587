package events

import (
	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Manager (or Event Bus) manages listeners and dispatches events synchronously
// in subscription order.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Setup ---

// HandDealtEvent carries one seat's private hand.
type HandDealtEvent struct {
	Seat  int
	Cards []deck.Card
}

// GameReadyEvent is published once seats are ordered and cards are dealt.
type GameReadyEvent struct {
	GameID string
	Seats  int
}

// --- Turn flow ---

type IllegalActionEvent struct {
	Seat   int
	Action string
	Reason string
}

type TokenMovedEvent struct {
	Seat      int
	Character config.Suspect
	From, To  board.Position
	Shortcut  bool
	Undo      bool
}

type WeaponMovedEvent struct {
	Weapon   config.Weapon
	From, To board.Position
}

type TurnAdvancedEvent struct {
	Seat int
}

// --- Claims ---

type SuggestionMadeEvent struct {
	Seat  int
	Claim deck.Claim
}

type AccusationMadeEvent struct {
	Seat    int
	Claim   deck.Claim
	Correct bool
}

// DisproofRequestEvent asks a seat to pick one of Candidates to show the
// originator. The game waits for ConfirmCardChoice.
type DisproofRequestEvent struct {
	Asked      int
	Originator int
	Claim      deck.Claim
	Candidates []deck.Card
}

// ClaimPassedEvent is published for a seat that holds none of the claim.
type ClaimPassedEvent struct {
	Seat       int
	Originator int
	Claim      deck.Claim
}

// ClaimDisprovedEvent: RevealedCard must be shown to the originator only.
type ClaimDisprovedEvent struct {
	Originator   int
	Disprover    int
	Claim        deck.Claim
	RevealedCard deck.Card
}

type ClaimUnrefutedEvent struct {
	Originator int
	Claim      deck.Claim
}

// --- Outcome ---

type PlayerEliminatedEvent struct {
	Seat int
}

type GameWonEvent struct {
	Winner       int
	Solution     deck.Claim
	LastStanding bool
}
