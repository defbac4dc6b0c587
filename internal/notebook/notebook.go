package notebook

import (
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/events"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Status defines the knowledge state of a card at one location.
type Status int

const (
	StatusMaybe Status = iota
	StatusYes
	StatusNo
)

func (s Status) String() string {
	switch s {
	case StatusYes:
		return "yes"
	case StatusNo:
		return "no"
	}
	return "maybe"
}

// mystery records that disprover showed one of cards to someone else.
type mystery struct {
	disprover int
	cards     mapset.Set[deck.Card]
}

// Notebook is one seat's detective notes. It only learns what that seat is
// allowed to see: its own hand, cards shown to it, and public passes and
// disprovals.
type Notebook struct {
	seat      int
	seats     int
	knowledge map[deck.Card][]Status
	mysteries []mystery
	shown     map[int]mapset.Set[deck.Card]
	log       logrus.FieldLogger
}

// New creates an empty notebook for seat at a table of seats players.
func New(seat, seats int, logger logrus.FieldLogger) *Notebook {
	n := &Notebook{
		seat:      seat,
		seats:     seats,
		knowledge: make(map[deck.Card][]Status),
		shown:     make(map[int]mapset.Set[deck.Card]),
		log:       logger.WithField("notebook", seat),
	}
	for _, c := range deck.FullSet() {
		// one column per seat plus the envelope
		n.knowledge[c] = make([]Status, seats+1)
	}
	return n
}

func (n *Notebook) Seat() int  { return n.seat }
func (n *Notebook) Seats() int { return n.seats }

// Status returns what is known about card being held by seat.
func (n *Notebook) Status(card deck.Card, seat int) Status {
	if seat < 0 || seat >= n.seats {
		return StatusMaybe
	}
	return n.knowledge[card][seat]
}

// EnvelopeStatus returns what is known about card being in the envelope.
func (n *Notebook) EnvelopeStatus(card deck.Card) Status {
	return n.knowledge[card][n.envelope()]
}

// Open returns how many disprovals are still unresolved.
func (n *Notebook) Open() int { return len(n.mysteries) }

// Solved returns the envelope once one card of every category is known.
func (n *Notebook) Solved() (deck.Claim, bool) {
	found := make(map[config.CardCategory]int)
	for _, cat := range config.Categories() {
		idx := -1
		for i := 0; i < config.CategorySize(cat); i++ {
			if n.EnvelopeStatus(deck.Card{Category: cat, Index: i}) == StatusYes {
				idx = i
				break
			}
		}
		if idx < 0 {
			return deck.Claim{}, false
		}
		found[cat] = idx
	}
	return deck.Claim{
		Suspect: config.Suspect(found[config.CategorySuspect]),
		Weapon:  config.Weapon(found[config.CategoryWeapon]),
		Room:    config.Room(found[config.CategoryRoom]),
	}, true
}

func (n *Notebook) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.HandDealtEvent:
		if event.Seat != n.seat {
			return
		}
		n.receiveHand(event.Cards)
	case events.ClaimPassedEvent:
		for _, c := range event.Claim.Cards() {
			n.markAbsent(c, event.Seat)
		}
	case events.ClaimDisprovedEvent:
		n.processDisproof(event)
	case events.ClaimUnrefutedEvent:
		if event.Originator != n.seat {
			break
		}
		n.log.Info("My claim was not disproved.")
		for _, c := range event.Claim.Cards() {
			if n.Status(c, n.seat) != StatusYes {
				n.markLocation(c, n.envelope())
			}
		}
	default:
		return
	}
	n.runDeductionLoop()
}

func (n *Notebook) receiveHand(cards []deck.Card) {
	hand := deck.NewHand(cards...)
	for _, c := range deck.FullSet() {
		if hand.Has(c) {
			n.markLocation(c, n.seat)
		} else {
			n.markAbsent(c, n.seat)
		}
	}
}

func (n *Notebook) processDisproof(event events.ClaimDisprovedEvent) {
	switch {
	case event.Originator == n.seat:
		// the revealed card is only meant for this seat
		n.markLocation(event.RevealedCard, event.Disprover)
	case event.Disprover == n.seat:
		seen, ok := n.shown[event.Originator]
		if !ok {
			seen = mapset.New[deck.Card]()
			n.shown[event.Originator] = seen
		}
		seen.Put(event.RevealedCard)
	default:
		m := mystery{disprover: event.Disprover, cards: mapset.New[deck.Card]()}
		for _, c := range event.Claim.Cards() {
			m.cards.Put(c)
		}
		n.mysteries = append(n.mysteries, m)
		n.log.Debugf("Noted that seat %d holds one of %v.", event.Disprover, event.Claim.Cards())
	}
}

// --- Internal Deduction Logic ---

func (n *Notebook) envelope() int { return n.seats }

func (n *Notebook) runDeductionLoop() {
	for i := 0; i < 10; i++ { // Safety break
		var changed bool
		changed = n.pruneAndSolveMysteries() || changed
		changed = n.deduceEnvelopeByElimination() || changed
		changed = n.deduceCardLocationsByElimination() || changed
		if !changed {
			break
		}
	}
}

// markLocation records that card is at location and nowhere else.
func (n *Notebook) markLocation(card deck.Card, location int) bool {
	row, ok := n.knowledge[card]
	if !ok {
		n.log.Errorf("Notebook asked to place unknown card %v", card)
		return false
	}
	if row[location] == StatusYes {
		return false
	}
	n.log.Debugf("Learned that %s is at location %d.", card, location)
	for i := range row {
		row[i] = StatusNo
	}
	row[location] = StatusYes
	return true
}

func (n *Notebook) markAbsent(card deck.Card, location int) bool {
	row := n.knowledge[card]
	if row[location] != StatusMaybe {
		return false
	}
	row[location] = StatusNo
	return true
}

func (n *Notebook) pruneAndSolveMysteries() bool {
	var changed bool
	var remaining []mystery
	for _, m := range n.mysteries {
		pruned := mapset.New[deck.Card]()
		known := false
		m.cards.Each(func(c deck.Card) {
			switch n.knowledge[c][m.disprover] {
			case StatusMaybe:
				pruned.Put(c)
			case StatusYes:
				known = true
			}
		})
		if known {
			// the disprover already has a card we know of; nothing more to learn
			changed = true
			continue
		}
		if pruned.Size() < m.cards.Size() {
			m.cards = pruned
			changed = true
		}
		switch pruned.Size() {
		case 0:
			n.log.Errorf("Seat %d disproved with a card they cannot hold", m.disprover)
			changed = true
		case 1:
			pruned.Each(func(c deck.Card) {
				n.log.Infof("Seat %d must have shown %s.", m.disprover, c)
				n.markLocation(c, m.disprover)
			})
			changed = true
		default:
			remaining = append(remaining, m)
		}
	}
	n.mysteries = remaining
	return changed
}

func (n *Notebook) deduceCardLocationsByElimination() bool {
	var changed bool
	for _, c := range deck.FullSet() {
		maybe := -1
		count := 0
		known := false
		for loc, s := range n.knowledge[c] {
			if s == StatusYes {
				known = true
				break
			}
			if s == StatusMaybe {
				maybe = loc
				count++
			}
		}
		if !known && count == 1 {
			changed = n.markLocation(c, maybe) || changed
		}
	}
	return changed
}

// deduceEnvelopeByElimination fills the envelope column: the last possible
// card of a category is the answer, and a known answer rules out the rest.
func (n *Notebook) deduceEnvelopeByElimination() bool {
	var changed bool
	env := n.envelope()
	for _, cat := range config.Categories() {
		var maybes []deck.Card
		var answer *deck.Card
		for i := 0; i < config.CategorySize(cat); i++ {
			c := deck.Card{Category: cat, Index: i}
			switch n.knowledge[c][env] {
			case StatusYes:
				answer = &c
			case StatusMaybe:
				maybes = append(maybes, c)
			}
		}
		if answer != nil {
			for _, c := range maybes {
				changed = n.markAbsent(c, env) || changed
			}
			continue
		}
		if len(maybes) == 1 {
			changed = n.markLocation(maybes[0], env) || changed
		}
	}
	return changed
}
