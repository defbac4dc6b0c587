package deck

import "github.com/zyedidia/generic/mapset"

// Hand is the unordered set of cards a seat holds.
type Hand struct {
	cards mapset.Set[Card]
}

func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: mapset.New[Card]()}
	for _, c := range cards {
		h.cards.Put(c)
	}
	return h
}

func (h *Hand) Add(c Card)      { h.cards.Put(c) }
func (h *Hand) Has(c Card) bool { return h.cards.Has(c) }
func (h *Hand) Len() int        { return h.cards.Size() }

// Cards returns the hand sorted by category and identity.
func (h *Hand) Cards() []Card {
	out := make([]Card, 0, h.cards.Size())
	h.cards.Each(func(c Card) {
		out = append(out, c)
	})
	SortCards(out)
	return out
}

// Matching returns the claim's cards held in this hand, in claim order.
func (h *Hand) Matching(claim Claim) []Card {
	var out []Card
	for _, c := range claim.Cards() {
		if h.cards.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
