package notebook

import (
	"math/rand"

	"clueweb/internal/deck"
)

// Chooser selects the card to show from the matching cards of a claim.
// This allows swapping random and deterministic selection strategies.
type Chooser interface {
	Choose(cards []deck.Card) (deck.Card, bool)
}

// RandomChooser picks a matching card at random.
type RandomChooser struct {
	rand *rand.Rand
}

func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(cards []deck.Card) (deck.Card, bool) {
	if len(cards) == 0 {
		return deck.Card{}, false
	}
	return cards[r.rand.Intn(len(cards))], true
}

// DeterministicChooser always picks the lowest card. Used for predictable play.
type DeterministicChooser struct{}

func (DeterministicChooser) Choose(cards []deck.Card) (deck.Card, bool) {
	if len(cards) == 0 {
		return deck.Card{}, false
	}
	sorted := append([]deck.Card(nil), cards...)
	deck.SortCards(sorted)
	return sorted[0], true
}

// Recommend suggests which candidate this seat should show to originator.
// Cards already shown to originator come first, then fallback decides.
func (n *Notebook) Recommend(originator int, candidates []deck.Card, fallback Chooser) (deck.Card, bool) {
	if seen, ok := n.shown[originator]; ok {
		for _, c := range candidates {
			if seen.Has(c) {
				return c, true
			}
		}
	}
	return fallback.Choose(candidates)
}
