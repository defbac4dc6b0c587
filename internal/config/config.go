package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	DefaultMinPlayers   = 2
	DefaultMaxPlayers   = 6
	DefaultPasswordCost = 10
)

// Entry is the presentation data for one identity. Game logic never reads it.
type Entry struct {
	Name      string `json:"name"`
	ImagePath string `json:"image"`
}

// GameConfig holds the presentation table and the seat limits for a session.
type GameConfig struct {
	MinPlayers   int              `json:"min_players"`
	MaxPlayers   int              `json:"max_players"`
	PasswordCost int              `json:"password_cost"`
	Suspects     map[string]Entry `json:"suspects"`
	Weapons      map[string]Entry `json:"weapons"`
	Rooms        map[string]Entry `json:"rooms"`
}

// Load reads, parses, and validates the game configuration from a file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration with the classic English names.
func Default() *GameConfig {
	cfg := &GameConfig{
		Suspects: map[string]Entry{
			"MS_SCARLET":      {Name: "Miss Scarlet", ImagePath: "images/players/miss_scarlet.png"},
			"PROFESSOR_PLUM":  {Name: "Professor Plum", ImagePath: "images/players/professor_plum.png"},
			"COLONEL_MUSTARD": {Name: "Colonel Mustard", ImagePath: "images/players/colonel_mustard.png"},
			"MRS_PEACOCK":     {Name: "Mrs. Peacock", ImagePath: "images/players/mrs_peacock.png"},
			"MR_GREEN":        {Name: "Mr. Green", ImagePath: "images/players/mr_green.png"},
			"MRS_WHITE":       {Name: "Mrs. White", ImagePath: "images/players/mrs_white.png"},
		},
		Weapons: map[string]Entry{
			"ROPE":        {Name: "Rope", ImagePath: "images/weapons/rope.png"},
			"LEAD_PIPE":   {Name: "Lead Pipe", ImagePath: "images/weapons/leadPipe.png"},
			"KNIFE":       {Name: "Knife", ImagePath: "images/weapons/knife.png"},
			"WRENCH":      {Name: "Wrench", ImagePath: "images/weapons/wrench.png"},
			"CANDLESTICK": {Name: "Candlestick", ImagePath: "images/weapons/candleStick.png"},
			"REVOLVER":    {Name: "Revolver", ImagePath: "images/weapons/revolver.png"},
		},
		Rooms: map[string]Entry{
			"STUDY":         {Name: "Study", ImagePath: "images/tiles/study.jpg"},
			"HALL":          {Name: "Hall", ImagePath: "images/tiles/hall.jpg"},
			"LOUNGE":        {Name: "Lounge", ImagePath: "images/tiles/lounge.jpg"},
			"LIBRARY":       {Name: "Library", ImagePath: "images/tiles/library.jpg"},
			"BILLIARD_ROOM": {Name: "Billiard Room", ImagePath: "images/tiles/billiard_room.jpg"},
			"DINING_ROOM":   {Name: "Dining Room", ImagePath: "images/tiles/dining_room.jpg"},
			"CONSERVATORY":  {Name: "Conservatory", ImagePath: "images/tiles/conservatory.jpg"},
			"BALLROOM":      {Name: "Ballroom", ImagePath: "images/tiles/ballroom.jpg"},
			"KITCHEN":       {Name: "Kitchen", ImagePath: "images/tiles/kitchen.jpg"},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *GameConfig) applyDefaults() {
	if c.MinPlayers == 0 {
		c.MinPlayers = DefaultMinPlayers
	}
	if c.MaxPlayers == 0 {
		c.MaxPlayers = DefaultMaxPlayers
	}
	if c.PasswordCost == 0 {
		c.PasswordCost = DefaultPasswordCost
	}
}

// Validate checks that every identity has a display entry and that the seat
// limits fit the six available characters.
func (c *GameConfig) Validate() error {
	if c.MinPlayers < 2 || c.MaxPlayers > len(suspectKeys) || c.MinPlayers > c.MaxPlayers {
		return fmt.Errorf("invalid player limits %d..%d", c.MinPlayers, c.MaxPlayers)
	}
	for _, cat := range Categories() {
		table := c.tableFor(cat)
		for i := 0; i < CategorySize(cat); i++ {
			key := KeyFor(cat, i)
			if e, ok := table[key]; !ok || e.Name == "" {
				return fmt.Errorf("config is missing a display name for %s %s", cat, key)
			}
		}
	}
	return nil
}

func (c *GameConfig) tableFor(cat CardCategory) map[string]Entry {
	switch cat {
	case CategorySuspect:
		return c.Suspects
	case CategoryWeapon:
		return c.Weapons
	case CategoryRoom:
		return c.Rooms
	default:
		return nil
	}
}

// DisplayName returns the human readable name of the index-th identity in a
// category, falling back to its key.
func (c *GameConfig) DisplayName(cat CardCategory, index int) string {
	key := KeyFor(cat, index)
	if e, ok := c.tableFor(cat)[key]; ok && e.Name != "" {
		return e.Name
	}
	return key
}

func (c *GameConfig) SuspectName(s Suspect) string { return c.DisplayName(CategorySuspect, int(s)) }
func (c *GameConfig) WeaponName(w Weapon) string   { return c.DisplayName(CategoryWeapon, int(w)) }
func (c *GameConfig) RoomName(r Room) string       { return c.DisplayName(CategoryRoom, int(r)) }

// ImagePath returns the asset path for an identity, or "" when none is set.
func (c *GameConfig) ImagePath(cat CardCategory, index int) string {
	return c.tableFor(cat)[KeyFor(cat, index)].ImagePath
}

// CardListForCategory is a helper to get the display names of a category in
// identity order.
func (c *GameConfig) CardListForCategory(cat CardCategory) []string {
	names := make([]string, CategorySize(cat))
	for i := range names {
		names[i] = c.DisplayName(cat, i)
	}
	return names
}
