package game

import (
	"fmt"
	"math/rand"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/events"
	"clueweb/internal/player"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	layout       board.Layout
	seats        int
	deckOrder    []deck.Card
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		layout:       board.ClassicLayout(),
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *GameBuilder) WithSeats(n int) *GameBuilder {
	b.seats = n
	return b
}

func (b *GameBuilder) WithLayout(l board.Layout) *GameBuilder {
	b.layout = l
	return b
}

// WithDeckOrder replaces the shuffle with a fixed draw order.
func (b *GameBuilder) WithDeckOrder(cards []deck.Card) *GameBuilder {
	b.deckOrder = cards
	return b
}

// Build constructs the Game object after all options have been configured.
// Seats are empty until SetupPlayer fills them.
func (b *GameBuilder) Build() (*Game, error) {
	if b.seats < b.cfg.MinPlayers || b.seats > b.cfg.MaxPlayers {
		return nil, fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidPlayerCount, b.seats, b.cfg.MinPlayers, b.cfg.MaxPlayers)
	}

	// 1. Board and tokens
	brd, err := board.New(b.layout)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}
	rooms := config.AllRooms()
	b.rand.Shuffle(len(rooms), func(i, j int) { rooms[i], rooms[j] = rooms[j], rooms[i] })
	for i, w := range config.AllWeapons() {
		if err := brd.PlaceWeapon(w, brd.Room(rooms[i])); err != nil {
			return nil, fmt.Errorf("failed to place %s: %w", w, err)
		}
	}

	// 2. Deck and envelope
	var d *deck.Deck
	if b.deckOrder != nil {
		d = deck.FromCards(b.deckOrder)
	} else {
		d = deck.Build(b.rand)
	}
	env, err := d.PickEnvelope()
	if err != nil {
		return nil, fmt.Errorf("failed to fill envelope: %w", err)
	}

	// 3. Empty seats
	id := uuid.New().String()
	game := &Game{
		ID:           id,
		Config:       b.cfg,
		Board:        brd,
		EventManager: b.eventManager,
		deck:         d,
		envelope:     env,
		phase:        PhaseSetup,
		log:          b.log.WithField("game", id),
	}
	for i := 0; i < b.seats; i++ {
		game.Players = append(game.Players, player.New(i))
	}

	game.log.Debugf("Game built with %d seats. Solution: %v", b.seats, env.Solution())
	return game, nil
}
