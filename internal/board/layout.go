package board

import "clueweb/internal/config"

// Layout is the literal description of a board. Each rune of Rows is one cell:
//
//	'S' start square, 'H' hallway, '.' out of bounds,
//	'1'..'9' rooms in config.Room order.
type Layout struct {
	Rows []string

	// Shortcuts pairs corner rooms that are linked directly.
	Shortcuts [][2]config.Room

	// Uncapped rooms keep every adjacent hallway as an exit.
	Uncapped []config.Room

	// Starts places each character on its start square.
	Starts map[config.Suspect]Position
}

// ClassicLayout returns the 7x7 board of the original game.
func ClassicLayout() Layout {
	return Layout{
		Rows: []string{
			"....S..",
			".1H2H3.",
			"SH.H.HS",
			".4H5H6.",
			"SH.H.H.",
			".7H8H9.",
			"..S.S..",
		},
		Shortcuts: [][2]config.Room{
			{config.Study, config.Kitchen},
			{config.Lounge, config.Conservatory},
		},
		Uncapped: []config.Room{config.BilliardRoom},
		Starts: map[config.Suspect]Position{
			config.MsScarlet:      {Row: 0, Col: 4},
			config.ProfessorPlum:  {Row: 2, Col: 0},
			config.ColonelMustard: {Row: 2, Col: 6},
			config.MrsPeacock:     {Row: 4, Col: 0},
			config.MrGreen:        {Row: 6, Col: 2},
			config.MrsWhite:       {Row: 6, Col: 4},
		},
	}
}

func classify(code rune) (TileKind, config.Room, bool) {
	switch {
	case code == 'S':
		return KindStartSquare, 0, true
	case code == 'H':
		return KindHallway, 0, true
	case code == '.':
		return KindOutOfBounds, 0, true
	case code >= '1' && code <= '9':
		return KindRoom, config.Room(code - '1'), true
	default:
		return KindOutOfBounds, 0, false
	}
}
