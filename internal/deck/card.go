package deck

import (
	"fmt"
	"sort"

	"clueweb/internal/config"
)

// Card is an immutable identity token. Two cards are equal exactly when their
// category and identity index are equal.
type Card struct {
	Category config.CardCategory
	Index    int
}

func SuspectCard(s config.Suspect) Card { return Card{Category: config.CategorySuspect, Index: int(s)} }
func WeaponCard(w config.Weapon) Card   { return Card{Category: config.CategoryWeapon, Index: int(w)} }
func RoomCard(r config.Room) Card       { return Card{Category: config.CategoryRoom, Index: int(r)} }

// Key returns the identity key, e.g. "LEAD_PIPE".
func (c Card) Key() string { return config.KeyFor(c.Category, c.Index) }

func (c Card) String() string { return fmt.Sprintf("%s (%s)", c.Key(), c.Category) }

// Name resolves the display name through the presentation table.
func (c Card) Name(cfg *config.GameConfig) string { return cfg.DisplayName(c.Category, c.Index) }

// Less orders cards by category, then identity.
func (c Card) Less(o Card) bool {
	if c.Category != o.Category {
		return c.Category < o.Category
	}
	return c.Index < o.Index
}

// SortCards sorts in place by category and identity.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })
}

// FullSet returns all 21 cards in category order.
func FullSet() []Card {
	var cards []Card
	for _, cat := range config.Categories() {
		for i := 0; i < config.CategorySize(cat); i++ {
			cards = append(cards, Card{Category: cat, Index: i})
		}
	}
	return cards
}

// Claim names a suspect, a weapon and a room. Suggestions and accusations
// are both claims.
type Claim struct {
	Suspect config.Suspect
	Weapon  config.Weapon
	Room    config.Room
}

// Cards returns the claim as suspect, weapon and room cards.
func (c Claim) Cards() []Card {
	return []Card{SuspectCard(c.Suspect), WeaponCard(c.Weapon), RoomCard(c.Room)}
}

func (c Claim) Valid() bool { return c.Suspect.Valid() && c.Weapon.Valid() && c.Room.Valid() }

func (c Claim) String() string {
	return fmt.Sprintf("%s with the %s in the %s", c.Suspect, c.Weapon, c.Room)
}

// Envelope is the hidden solution: exactly one card of each category.
type Envelope struct {
	suspect, weapon, room Card
}

func (e Envelope) SuspectCard() Card { return e.suspect }
func (e Envelope) WeaponCard() Card  { return e.weapon }
func (e Envelope) RoomCard() Card    { return e.room }
func (e Envelope) Cards() []Card     { return []Card{e.suspect, e.weapon, e.room} }

// Solution returns the envelope as a claim.
func (e Envelope) Solution() Claim {
	return Claim{
		Suspect: config.Suspect(e.suspect.Index),
		Weapon:  config.Weapon(e.weapon.Index),
		Room:    config.Room(e.room.Index),
	}
}

// Matches reports whether every field of the claim equals the envelope.
func (e Envelope) Matches(c Claim) bool {
	return SuspectCard(c.Suspect) == e.suspect &&
		WeaponCard(c.Weapon) == e.weapon &&
		RoomCard(c.Room) == e.room
}

// NewEnvelope builds an envelope from a known solution.
func NewEnvelope(solution Claim) Envelope {
	return Envelope{
		suspect: SuspectCard(solution.Suspect),
		weapon:  WeaponCard(solution.Weapon),
		room:    RoomCard(solution.Room),
	}
}
