package player

import (
	"errors"
	"fmt"
	"strings"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBlankUsername = errors.New("username must not be blank")
	ErrBlankPassword = errors.New("password must not be blank")
	ErrAlreadySetUp  = errors.New("seat is already set up")
)

// Player is one seat at the table. The password only gates which seat's
// private information the shared screen shows; it is not authentication.
type Player struct {
	Seat      int
	Username  string
	Character *board.Character
	Hand      *deck.Hand

	passwordHash []byte
	active       bool
	pulled       bool
}

// New returns an empty seat waiting to be set up.
func New(seat int) *Player {
	return &Player{Seat: seat, Hand: deck.NewHand()}
}

// Setup fills the seat. The character is fixed for the rest of the game.
func (p *Player) Setup(username, password string, c *board.Character, cost int) error {
	if p.Character != nil {
		return ErrAlreadySetUp
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrBlankUsername
	}
	if strings.TrimSpace(password) == "" {
		return ErrBlankPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	p.Username = username
	p.passwordHash = hash
	p.Character = c
	p.active = true
	return nil
}

func (p *Player) IsSetUp() bool { return p.Character != nil }

// CheckPassword reports whether pw is the seat's password.
func (p *Player) CheckPassword(pw string) bool {
	if len(p.passwordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.passwordHash, []byte(pw)) == nil
}

// Suspect returns the identity of the seat's character.
func (p *Player) Suspect() config.Suspect { return p.Character.ID() }

func (p *Player) Active() bool { return p.active }

// Eliminate removes the seat from the turn rotation. Its hand stays in play
// for disproving.
func (p *Player) Eliminate() { p.active = false }

func (p *Player) PulledBySuggestion() bool     { return p.pulled }
func (p *Player) SetPulledBySuggestion(v bool) { p.pulled = v }

// MatchingCards returns the cards of the claim this seat holds.
func (p *Player) MatchingCards(claim deck.Claim) []deck.Card {
	return p.Hand.Matching(claim)
}

func (p *Player) String() string {
	if p.Character == nil {
		return fmt.Sprintf("seat %d (empty)", p.Seat)
	}
	return fmt.Sprintf("seat %d %s (%s)", p.Seat, p.Username, p.Suspect())
}
