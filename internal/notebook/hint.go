package notebook

import (
	"sort"

	"clueweb/internal/config"
	"clueweb/internal/deck"
)

// Strategy builds a suggestion hint for the room the seat stands in.
type Strategy interface {
	Name() string
	Build(n *Notebook, room config.Room, suspects []config.Suspect, chooser Chooser) (deck.Claim, bool)
}

// DefaultStrategies are tried in order by Hint.
var DefaultStrategies = []Strategy{
	ExploitStrategy{},
	SurgicalStrikeStrategy{},
	ExploreStrategy{},
}

// Hint proposes a suspect and weapon to suggest in room. Only suspects
// listed may be named. It returns the claim and the strategy that built it.
func (n *Notebook) Hint(room config.Room, suspects []config.Suspect, chooser Chooser) (deck.Claim, string) {
	for _, s := range DefaultStrategies {
		if claim, ok := s.Build(n, room, suspects, chooser); ok {
			n.log.Debugf("Hint from %s strategy: %s", s.Name(), claim)
			return claim, s.Name()
		}
	}
	claim, _ := ExploreStrategy{}.Build(n, room, suspects, chooser)
	return claim, ExploreStrategy{}.Name()
}

// --- Strategy Implementations ---

// ExploitStrategy keeps a known envelope card and probes the other category.
type ExploitStrategy struct{}

func (ExploitStrategy) Name() string { return "exploit" }

func (ExploitStrategy) Build(n *Notebook, room config.Room, suspects []config.Suspect, chooser Chooser) (deck.Claim, bool) {
	suspect, knowSuspect := n.envelopeCard(suspectCards(suspects))
	weapon, knowWeapon := n.envelopeCard(weaponCards())
	if knowSuspect == knowWeapon {
		return deck.Claim{}, false
	}
	if !knowSuspect {
		suspect = n.pickUnknown(suspectCards(suspects), chooser)
	}
	if !knowWeapon {
		weapon = n.pickUnknown(weaponCards(), chooser)
	}
	return claimOf(suspect, weapon, room), true
}

// SurgicalStrikeStrategy targets the card that appears in the most open
// disprovals and fills the other slot from the seat's own hand.
type SurgicalStrikeStrategy struct{}

func (SurgicalStrikeStrategy) Name() string { return "surgical strike" }

func (SurgicalStrikeStrategy) Build(n *Notebook, room config.Room, suspects []config.Suspect, chooser Chooser) (deck.Claim, bool) {
	allowed := deck.NewHand(append(suspectCards(suspects), weaponCards()...)...)
	frequency := make(map[deck.Card]int)
	for _, m := range n.mysteries {
		m.cards.Each(func(c deck.Card) {
			if allowed.Has(c) {
				frequency[c]++
			}
		})
	}
	if len(frequency) == 0 {
		return deck.Claim{}, false
	}
	targets := sortByFrequency(frequency)
	target := targets[0]

	var suspect, weapon deck.Card
	if target.Category == config.CategorySuspect {
		suspect = target
		weapon = n.pickOwn(weaponCards(), chooser)
	} else {
		weapon = target
		suspect = n.pickOwn(suspectCards(suspects), chooser)
	}
	return claimOf(suspect, weapon, room), true
}

// ExploreStrategy names cards whose location is still open.
type ExploreStrategy struct{}

func (ExploreStrategy) Name() string { return "explore" }

func (ExploreStrategy) Build(n *Notebook, room config.Room, suspects []config.Suspect, chooser Chooser) (deck.Claim, bool) {
	suspect := n.pickUnknown(suspectCards(suspects), chooser)
	weapon := n.pickUnknown(weaponCards(), chooser)
	return claimOf(suspect, weapon, room), true
}

// --- Strategy Helpers ---

func (n *Notebook) envelopeCard(cards []deck.Card) (deck.Card, bool) {
	for _, c := range cards {
		if n.EnvelopeStatus(c) == StatusYes {
			return c, true
		}
	}
	return deck.Card{}, false
}

// pickUnknown prefers cards that may still be in the envelope, then cards
// outside the seat's hand, then anything.
func (n *Notebook) pickUnknown(cards []deck.Card, chooser Chooser) deck.Card {
	var maybes, notMine []deck.Card
	for _, c := range cards {
		if n.Status(c, n.seat) == StatusYes {
			continue
		}
		notMine = append(notMine, c)
		if n.EnvelopeStatus(c) == StatusMaybe {
			maybes = append(maybes, c)
		}
	}
	for _, pool := range [][]deck.Card{maybes, notMine, cards} {
		if c, ok := chooser.Choose(pool); ok {
			return c
		}
	}
	return deck.Card{}
}

// pickOwn prefers a card from the seat's own hand so that only the other
// slot of the claim can be disproved.
func (n *Notebook) pickOwn(cards []deck.Card, chooser Chooser) deck.Card {
	var mine []deck.Card
	for _, c := range cards {
		if n.Status(c, n.seat) == StatusYes {
			mine = append(mine, c)
		}
	}
	if c, ok := chooser.Choose(mine); ok {
		return c
	}
	return n.pickUnknown(cards, chooser)
}

func suspectCards(suspects []config.Suspect) []deck.Card {
	out := make([]deck.Card, 0, len(suspects))
	for _, s := range suspects {
		out = append(out, deck.SuspectCard(s))
	}
	return out
}

func weaponCards() []deck.Card {
	var out []deck.Card
	for _, w := range config.AllWeapons() {
		out = append(out, deck.WeaponCard(w))
	}
	return out
}

func claimOf(suspect, weapon deck.Card, room config.Room) deck.Claim {
	return deck.Claim{
		Suspect: config.Suspect(suspect.Index),
		Weapon:  config.Weapon(weapon.Index),
		Room:    room,
	}
}

// sortByFrequency orders cards by descending count, ties by identity.
func sortByFrequency(m map[deck.Card]int) []deck.Card {
	out := make([]deck.Card, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if m[out[i]] != m[out[j]] {
			return m[out[i]] > m[out[j]]
		}
		return out[i].Less(out[j])
	})
	return out
}
