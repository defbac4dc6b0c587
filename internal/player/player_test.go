package player

import (
	"errors"
	"testing"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"

	"golang.org/x/crypto/bcrypt"
)

func TestSetup(t *testing.T) {
	b := board.Classic()

	t.Run("it fills an empty seat", func(t *testing.T) {
		p := New(0)
		if err := p.Setup(" alice ", "secret", b.Character(config.MrGreen), bcrypt.MinCost); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
		if p.Username != "alice" || p.Suspect() != config.MrGreen || !p.Active() {
			t.Errorf("unexpected seat state %s", p)
		}
		if !p.CheckPassword("secret") || p.CheckPassword("guess") {
			t.Error("password check is wrong")
		}
	})

	t.Run("blank inputs are rejected", func(t *testing.T) {
		p := New(1)
		if err := p.Setup("  ", "pw", b.Character(config.MrGreen), bcrypt.MinCost); !errors.Is(err, ErrBlankUsername) {
			t.Errorf("expected ErrBlankUsername, got %v", err)
		}
		if err := p.Setup("bob", " ", b.Character(config.MrGreen), bcrypt.MinCost); !errors.Is(err, ErrBlankPassword) {
			t.Errorf("expected ErrBlankPassword, got %v", err)
		}
		if p.IsSetUp() {
			t.Error("rejected setup must leave the seat empty")
		}
	})

	t.Run("a seat is set up once", func(t *testing.T) {
		p := New(2)
		if err := p.Setup("carol", "pw", b.Character(config.MrsWhite), bcrypt.MinCost); err != nil {
			t.Fatal(err)
		}
		if err := p.Setup("dave", "pw", b.Character(config.MrsPeacock), bcrypt.MinCost); !errors.Is(err, ErrAlreadySetUp) {
			t.Errorf("expected ErrAlreadySetUp, got %v", err)
		}
	})

	t.Run("an empty seat has no password", func(t *testing.T) {
		if New(3).CheckPassword("") {
			t.Error("empty seat must not verify")
		}
	})
}

func TestMatchingCardsAndElimination(t *testing.T) {
	p := New(0)
	p.Hand.Add(deck.WeaponCard(config.Candlestick))
	p.Hand.Add(deck.RoomCard(config.Library))

	claim := deck.Claim{Suspect: config.MrsPeacock, Weapon: config.Candlestick, Room: config.Hall}
	if got := p.MatchingCards(claim); len(got) != 1 || got[0] != deck.WeaponCard(config.Candlestick) {
		t.Errorf("unexpected matches %v", got)
	}

	p.Eliminate()
	if p.Active() {
		t.Error("eliminated seat should be inactive")
	}
	if len(p.MatchingCards(claim)) != 1 {
		t.Error("an eliminated seat keeps its hand")
	}
}
