package config

// Suspect identifies one of the six playable characters. The zero value is
// Miss Scarlet, who always opens the game.
type Suspect int

const (
	MsScarlet Suspect = iota
	ProfessorPlum
	ColonelMustard
	MrsPeacock
	MrGreen
	MrsWhite
)

// Weapon identifies one of the six weapon tokens.
type Weapon int

const (
	Rope Weapon = iota
	LeadPipe
	Knife
	Wrench
	Candlestick
	Revolver
)

// Room identifies one of the nine rooms. The order matches the digit codes
// used by board layouts ('1' is Study, '9' is Kitchen).
type Room int

const (
	Study Room = iota
	Hall
	Lounge
	Library
	BilliardRoom
	DiningRoom
	Conservatory
	Ballroom
	Kitchen
)

var (
	suspectKeys = []string{"MS_SCARLET", "PROFESSOR_PLUM", "COLONEL_MUSTARD", "MRS_PEACOCK", "MR_GREEN", "MRS_WHITE"}
	weaponKeys  = []string{"ROPE", "LEAD_PIPE", "KNIFE", "WRENCH", "CANDLESTICK", "REVOLVER"}
	roomKeys    = []string{"STUDY", "HALL", "LOUNGE", "LIBRARY", "BILLIARD_ROOM", "DINING_ROOM", "CONSERVATORY", "BALLROOM", "KITCHEN"}
)

// AllSuspects returns every suspect in identity order.
func AllSuspects() []Suspect {
	out := make([]Suspect, len(suspectKeys))
	for i := range out {
		out[i] = Suspect(i)
	}
	return out
}

// AllWeapons returns every weapon in identity order.
func AllWeapons() []Weapon {
	out := make([]Weapon, len(weaponKeys))
	for i := range out {
		out[i] = Weapon(i)
	}
	return out
}

// AllRooms returns every room in identity order.
func AllRooms() []Room {
	out := make([]Room, len(roomKeys))
	for i := range out {
		out[i] = Room(i)
	}
	return out
}

// Key is the stable identifier used in configuration files and logs.
func (s Suspect) Key() string { return keyOf(suspectKeys, int(s)) }
func (w Weapon) Key() string  { return keyOf(weaponKeys, int(w)) }
func (r Room) Key() string    { return keyOf(roomKeys, int(r)) }

func (s Suspect) Valid() bool { return s >= 0 && int(s) < len(suspectKeys) }
func (w Weapon) Valid() bool  { return w >= 0 && int(w) < len(weaponKeys) }
func (r Room) Valid() bool    { return r >= 0 && int(r) < len(roomKeys) }

func (s Suspect) String() string { return s.Key() }
func (w Weapon) String() string  { return w.Key() }
func (r Room) String() string    { return r.Key() }

func keyOf(keys []string, i int) string {
	if i < 0 || i >= len(keys) {
		return "UNKNOWN"
	}
	return keys[i]
}

// CardCategory defines the type of a card using a typed enum.
type CardCategory int

const (
	CategorySuspect CardCategory = iota
	CategoryWeapon
	CategoryRoom
)

func (cc CardCategory) String() string {
	return []string{"suspects", "weapons", "rooms"}[cc]
}

// Categories lists the card categories in deck order.
func Categories() []CardCategory {
	return []CardCategory{CategorySuspect, CategoryWeapon, CategoryRoom}
}

// CategorySize is the number of identities in a category.
func CategorySize(cat CardCategory) int {
	switch cat {
	case CategorySuspect:
		return len(suspectKeys)
	case CategoryWeapon:
		return len(weaponKeys)
	case CategoryRoom:
		return len(roomKeys)
	default:
		return 0
	}
}

// KeyFor returns the identity key of the index-th member of a category.
func KeyFor(cat CardCategory, index int) string {
	switch cat {
	case CategorySuspect:
		return keyOf(suspectKeys, index)
	case CategoryWeapon:
		return keyOf(weaponKeys, index)
	case CategoryRoom:
		return keyOf(roomKeys, index)
	default:
		return "UNKNOWN"
	}
}
