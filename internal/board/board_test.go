package board

import (
	"errors"
	"testing"

	"clueweb/internal/config"
)

func TestClassicBoardTopology(t *testing.T) {
	// GIVEN the classic 7x7 board
	b := Classic()

	t.Run("it classifies cells from the layout table", func(t *testing.T) {
		tests := []struct {
			row, col int
			want     TileKind
		}{
			{0, 4, KindStartSquare},
			{1, 1, KindRoom},
			{1, 2, KindHallway},
			{2, 2, KindOutOfBounds},
			{3, 3, KindRoom},
			{6, 2, KindStartSquare},
		}
		for _, tt := range tests {
			if got := b.TileAt(tt.row, tt.col).Kind; got != tt.want {
				t.Errorf("(%d,%d): got %s, want %s", tt.row, tt.col, got, tt.want)
			}
		}
	})

	t.Run("out of range lookups return nil", func(t *testing.T) {
		for _, pos := range []Position{{-1, 0}, {0, -1}, {7, 0}, {0, 7}} {
			if tile := b.TileAt(pos.Row, pos.Col); tile != nil {
				t.Errorf("expected nil at %s, got %s", pos, tile)
			}
		}
	})

	t.Run("start squares lead only to their hallway", func(t *testing.T) {
		start := b.TileAt(0, 4)
		neighbors := b.NeighborsOf(start)
		if len(neighbors) != 1 || neighbors[0] != b.TileAt(1, 4) {
			t.Errorf("unexpected start neighbors %v", neighbors)
		}
	})

	t.Run("hallways lead only to rooms", func(t *testing.T) {
		hall := b.TileAt(1, 4)
		neighbors := b.NeighborsOf(hall)
		if len(neighbors) != 2 {
			t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
		}
		for _, n := range neighbors {
			if n.Kind != KindRoom {
				t.Errorf("hallway neighbor %s is not a room", n)
			}
		}
	})

	t.Run("the central room keeps all four exits", func(t *testing.T) {
		billiard := b.Room(config.BilliardRoom)
		if got := len(b.NeighborsOf(billiard)); got != 4 {
			t.Errorf("expected 4 exits, got %d", got)
		}
	})

	t.Run("edge rooms keep three exits", func(t *testing.T) {
		if got := len(b.NeighborsOf(b.Room(config.Hall))); got != 3 {
			t.Errorf("expected 3 exits, got %d", got)
		}
	})
}

func TestCornerShortcuts(t *testing.T) {
	b := Classic()
	pairs := map[config.Room]config.Room{
		config.Study:        config.Kitchen,
		config.Kitchen:      config.Study,
		config.Lounge:       config.Conservatory,
		config.Conservatory: config.Lounge,
	}
	for from, to := range pairs {
		room := b.Room(from)
		if !b.IsCornerRoom(room) {
			t.Errorf("%s should be a corner room", from)
		}
		if got := b.OppositeCorner(room); got != b.Room(to) {
			t.Errorf("%s shortcut: got %s, want %s", from, got, b.Room(to))
		}
		neighbors := b.NeighborsOf(room)
		if neighbors[len(neighbors)-1] != b.Room(to) {
			t.Errorf("%s: shortcut should be listed last", from)
		}
	}

	// The shortcut is not reflected back into the hallway graph.
	if b.OppositeCorner(b.Room(config.Hall)) != nil {
		t.Error("Hall should have no shortcut")
	}
	if b.Step(b.Room(config.Study), Up) != nil {
		t.Error("Study has no exit upwards")
	}
}

func TestMalformedLayouts(t *testing.T) {
	base := ClassicLayout()
	tests := []struct {
		name   string
		mutate func(l *Layout)
	}{
		{"ragged row", func(l *Layout) { l.Rows[3] = ".4H5H" }},
		{"unknown code", func(l *Layout) { l.Rows[0] = "....S.X" }},
		{"duplicate room", func(l *Layout) { l.Rows[5] = ".7H8H8." }},
		{"start without hallway", func(l *Layout) { l.Rows[0] = "S...S.." }},
		{"shared shortcut", func(l *Layout) {
			l.Shortcuts = append(l.Shortcuts, [2]config.Room{config.Study, config.Lounge})
		}},
		{"shortcut on a non-corner room", func(l *Layout) {
			l.Shortcuts = [][2]config.Room{{config.Hall, config.Ballroom}}
		}},
		{"shortcut from a corner to an edge room", func(l *Layout) {
			l.Shortcuts = [][2]config.Room{{config.Study, config.DiningRoom}}
		}},
		{"start on a hallway", func(l *Layout) {
			l.Starts = map[config.Suspect]Position{config.MsScarlet: {Row: 1, Col: 2}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := base
			layout.Rows = append([]string(nil), base.Rows...)
			tt.mutate(&layout)
			if _, err := New(layout); !errors.Is(err, ErrMalformedLayout) {
				t.Errorf("expected ErrMalformedLayout, got %v", err)
			}
		})
	}
}

func TestHallwayOccupancy(t *testing.T) {
	// GIVEN two characters whose start squares share no hallway
	b := Classic()
	scarlet := b.Character(config.MsScarlet)
	plum := b.Character(config.ProfessorPlum)
	hall := b.TileAt(1, 4)

	// WHEN Scarlet steps into the hallway next to her start square
	if err := b.MoveCharacter(scarlet, hall); err != nil {
		t.Fatalf("first move failed: %v", err)
	}

	t.Run("the hallway is marked occupied", func(t *testing.T) {
		if !hall.Occupied() || hall.Occupant() != scarlet {
			t.Error("expected Scarlet to occupy the hallway")
		}
	})

	t.Run("a second character is rejected without mutation", func(t *testing.T) {
		before := plum.Current()
		err := b.MoveCharacter(plum, hall)
		if !errors.Is(err, ErrHallwayOccupied) {
			t.Fatalf("expected ErrHallwayOccupied, got %v", err)
		}
		if plum.Current() != before || plum.Previous() != nil || hall.Occupant() != scarlet {
			t.Error("rejected move mutated state")
		}
	})

	t.Run("leaving frees the hallway", func(t *testing.T) {
		lounge := b.Room(config.Lounge)
		if err := b.MoveCharacter(scarlet, lounge); err != nil {
			t.Fatal(err)
		}
		if hall.Occupied() {
			t.Error("hallway should be free after Scarlet left")
		}
		if chars := lounge.Characters(); len(chars) != 1 || chars[0] != scarlet {
			t.Errorf("unexpected occupants %v", chars)
		}
	})
}

func TestUndoRoundTrip(t *testing.T) {
	// GIVEN Scarlet standing in the hallway below her start square
	b := Classic()
	scarlet := b.Character(config.MsScarlet)
	hall := b.TileAt(1, 4)
	lounge := b.Room(config.Lounge)
	if err := b.MoveCharacter(scarlet, hall); err != nil {
		t.Fatal(err)
	}
	b.ClearUndo(scarlet)

	// WHEN she moves into the Lounge, undoes it, and moves again
	if err := b.MoveCharacter(scarlet, lounge); err != nil {
		t.Fatal(err)
	}
	afterMove := snapshot(scarlet, hall, lounge)
	if err := b.UndoCharacter(scarlet); err != nil {
		t.Fatal(err)
	}

	t.Run("undo restores the pre-move position", func(t *testing.T) {
		if scarlet.Current() != hall || !hall.Occupied() || len(lounge.Characters()) != 0 {
			t.Error("undo did not restore position and occupancy")
		}
		if scarlet.Previous() != nil {
			t.Error("undo memory should be cleared")
		}
	})

	t.Run("a second undo is rejected", func(t *testing.T) {
		if err := b.UndoCharacter(scarlet); !errors.Is(err, ErrNothingToUndo) {
			t.Errorf("expected ErrNothingToUndo, got %v", err)
		}
	})

	if err := b.MoveCharacter(scarlet, lounge); err != nil {
		t.Fatal(err)
	}
	t.Run("redo reproduces the same state", func(t *testing.T) {
		if got := snapshot(scarlet, hall, lounge); got != afterMove {
			t.Errorf("redo state %+v differs from %+v", got, afterMove)
		}
	})
}

type state struct {
	current, previous *Tile
	hallOccupied      bool
	loungeCount       int
}

func snapshot(c *Character, hall, room *Tile) state {
	return state{c.Current(), c.Previous(), hall.Occupied(), len(room.Characters())}
}

func TestRelocateAndWeapons(t *testing.T) {
	b := Classic()
	green := b.Character(config.MrGreen)
	study := b.Room(config.Study)
	kitchen := b.Room(config.Kitchen)

	t.Run("relocation bypasses adjacency", func(t *testing.T) {
		if err := b.RelocateCharacter(green, study); err != nil {
			t.Fatal(err)
		}
		if green.Current() != study || green.Previous() != nil {
			t.Error("Green should stand in the Study with no undo memory")
		}
	})

	t.Run("relocation into a hallway is refused", func(t *testing.T) {
		if err := b.RelocateCharacter(green, b.TileAt(1, 2)); !errors.Is(err, ErrNotARoom) {
			t.Errorf("expected ErrNotARoom, got %v", err)
		}
	})

	t.Run("weapons move between rooms", func(t *testing.T) {
		if err := b.PlaceWeapon(config.Rope, study); err != nil {
			t.Fatal(err)
		}
		if err := b.PlaceWeapon(config.Rope, kitchen); err != nil {
			t.Fatal(err)
		}
		if len(study.Weapons()) != 0 || len(kitchen.Weapons()) != 1 {
			t.Error("rope should have left the Study for the Kitchen")
		}
		if b.Weapon(config.Rope).Current() != kitchen {
			t.Error("rope token position not updated")
		}
	})
}

func TestReleaseCharacter(t *testing.T) {
	b := Classic()
	peacock := b.Character(config.MrsPeacock)
	hall := b.TileAt(4, 1)
	if err := b.MoveCharacter(peacock, hall); err != nil {
		t.Fatal(err)
	}
	b.ReleaseCharacter(peacock)
	if hall.Occupied() {
		t.Error("released hallway should be free")
	}
}

func TestCanLink(t *testing.T) {
	kinds := []TileKind{KindOutOfBounds, KindStartSquare, KindHallway, KindRoom}
	allowed := map[[2]TileKind]bool{
		{KindStartSquare, KindHallway}: true,
		{KindHallway, KindRoom}:        true,
		{KindRoom, KindHallway}:        true,
	}
	for _, from := range kinds {
		for _, to := range kinds {
			if got := CanLink(from, to); got != allowed[[2]TileKind{from, to}] {
				t.Errorf("CanLink(%s, %s) = %v", from, to, got)
			}
		}
	}
}
