package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"clueweb/internal/config"
)

var (
	ErrEnvelopeTaken     = errors.New("envelope already picked")
	ErrEnvelopeNotPicked = errors.New("envelope must be picked before dealing")
	ErrNoHands           = errors.New("no hands to deal to")
	ErrCardAccounting    = errors.New("card accounting violated")
)

// Deck is the draw pile. It starts with all 21 cards and shrinks as the
// envelope is picked and the rest is dealt.
type Deck struct {
	cards         []Card
	envelopeTaken bool
}

// Build creates one card per identity and shuffles them.
func Build(rng *rand.Rand) *Deck {
	d := &Deck{cards: FullSet()}
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
	return d
}

// FromCards builds a deck with a fixed order. Used to replay known games.
func FromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the remaining pile in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// PickEnvelope removes the first card of each category from the shuffled pile.
func (d *Deck) PickEnvelope() (Envelope, error) {
	if d.envelopeTaken {
		return Envelope{}, ErrEnvelopeTaken
	}
	picked := make(map[config.CardCategory]Card)
	var rest []Card
	for _, c := range d.cards {
		if _, done := picked[c.Category]; !done {
			picked[c.Category] = c
			continue
		}
		rest = append(rest, c)
	}
	for _, cat := range config.Categories() {
		if _, ok := picked[cat]; !ok {
			return Envelope{}, fmt.Errorf("%w: no %s card left for the envelope", ErrCardAccounting, cat)
		}
	}
	d.cards = rest
	d.envelopeTaken = true
	return Envelope{
		suspect: picked[config.CategorySuspect],
		weapon:  picked[config.CategoryWeapon],
		room:    picked[config.CategoryRoom],
	}, nil
}

// Deal hands out the whole pile round-robin starting with hands[0]. When the
// pile does not divide evenly the earliest hands receive one extra card.
func (d *Deck) Deal(hands []*Hand) error {
	if !d.envelopeTaken {
		return ErrEnvelopeNotPicked
	}
	if len(hands) == 0 {
		return ErrNoHands
	}
	for i, c := range d.cards {
		hands[i%len(hands)].Add(c)
	}
	d.cards = nil
	return nil
}

// CheckAccounting verifies that the envelope, the hands and the remaining
// pile together hold every card exactly once.
func CheckAccounting(env Envelope, hands []*Hand, remaining []Card) error {
	seen := make(map[Card]int)
	for _, c := range env.Cards() {
		seen[c]++
	}
	for _, h := range hands {
		for _, c := range h.Cards() {
			seen[c]++
		}
	}
	for _, c := range remaining {
		seen[c]++
	}
	for _, c := range FullSet() {
		if seen[c] != 1 {
			return fmt.Errorf("%w: %s accounted %d times", ErrCardAccounting, c.Key(), seen[c])
		}
	}
	if len(seen) != len(FullSet()) {
		return fmt.Errorf("%w: unknown cards present", ErrCardAccounting)
	}
	return nil
}
