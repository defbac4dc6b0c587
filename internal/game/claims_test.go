package game

import (
	"errors"
	"testing"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/events"
)

// scarletInLounge plays the opening round and moves Scarlet into the Lounge.
// It is still Scarlet's turn afterwards.
func scarletInLounge(t *testing.T) (*Game, *recorder) {
	t.Helper()
	g, rec := newKnownGame(t, classicTrio...)
	openingRound(t, g)
	must(t, g.Move(board.Right))
	rec.reset()
	return g, rec
}

func TestSuggestionPlacementRules(t *testing.T) {
	g, _ := newKnownGame(t, classicTrio...)

	t.Run("not from a start square", func(t *testing.T) {
		expectIllegal(t, g.ProposeSuggestion(config.ProfessorPlum, config.Rope), "Your first move must be to the nearest hallway.")
	})

	must(t, g.Move(board.Down))

	t.Run("not from a hallway", func(t *testing.T) {
		expectIllegal(t, g.ProposeSuggestion(config.ProfessorPlum, config.Rope), "To make a suggestion you must be in a room.")
	})

	t.Run("accusations are barred from the start square too", func(t *testing.T) {
		must(t, g.EndTurn())
		expectIllegal(t, g.ProposeAccusation(config.MsScarlet, config.Rope, config.Hall), "Your first move must be to the nearest hallway.")
	})
}

func TestSuggestionPullsTokens(t *testing.T) {
	// GIVEN Scarlet in the Lounge and Plum in the hallway at (2,1)
	g, rec := scarletInLounge(t)
	plum := g.Board.Character(config.ProfessorPlum)
	lounge := g.Board.Room(config.Lounge)

	// WHEN Scarlet suggests Plum with the Rope
	must(t, g.ProposeSuggestion(config.ProfessorPlum, config.Rope))

	t.Run("the suspect is moved into the room and flagged", func(t *testing.T) {
		if plum.Current() != lounge {
			t.Fatalf("Plum is at %s", plum.Current())
		}
		if g.Board.TileAt(2, 1).Occupied() {
			t.Error("Plum's hallway was not freed")
		}
		if !g.Players[1].PulledBySuggestion() {
			t.Error("Plum should be flagged as pulled")
		}
		if plum.Previous() != nil {
			t.Error("a pulled character has nothing to undo")
		}
	})

	t.Run("the weapon is moved into the room", func(t *testing.T) {
		if g.Board.Weapon(config.Rope).Current() != lounge {
			t.Error("the Rope is not in the Lounge")
		}
	})

	t.Run("the claim names the current room", func(t *testing.T) {
		made := eventsOf[events.SuggestionMadeEvent](rec)
		want := deck.Claim{Suspect: config.ProfessorPlum, Weapon: config.Rope, Room: config.Lounge}
		if len(made) != 1 || made[0].Claim != want {
			t.Errorf("unexpected suggestion events %+v", made)
		}
	})

	t.Run("only one suggestion per turn", func(t *testing.T) {
		must(t, g.ConfirmCardChoice(deck.SuspectCard(config.ProfessorPlum)))
		expectIllegal(t, g.ProposeSuggestion(config.ColonelMustard, config.Rope), "You have already made a suggestion this turn.")
	})

	must(t, g.EndTurn())

	t.Run("the pulled player may suggest without moving", func(t *testing.T) {
		must(t, g.ProposeSuggestion(config.ColonelMustard, config.Wrench))
		if g.Players[1].PulledBySuggestion() {
			t.Error("the pull should be used up")
		}
		if g.Board.Character(config.ColonelMustard).Current() != lounge {
			t.Error("Mustard was not pulled into the Lounge")
		}
	})
}

func TestSuggestionWithoutMovingInCornerRoom(t *testing.T) {
	// GIVEN Scarlet starting a turn in the Lounge, where she already stood
	g, _ := scarletInLounge(t)
	must(t, g.EndTurn())
	must(t, g.Move(board.Up)) // Plum into the Study
	must(t, g.EndTurn())
	must(t, g.Move(board.Down)) // Mustard into the Dining Room
	must(t, g.EndTurn())

	// WHEN she suggests without moving
	// THEN the reason mentions the shortcut out of the corner room
	expectIllegal(t, g.ProposeSuggestion(config.ProfessorPlum, config.Rope),
		"To make a suggestion here you must re-enter the room from a hallway or take the shortcut and suggest in the opposite room.")

	// The shortcut counts as a move, so the suggestion is allowed afterwards.
	must(t, g.UseShortcut())
	must(t, g.ProposeSuggestion(config.MsScarlet, config.Knife))
}

func TestSuggestionOfUnassignedSuspect(t *testing.T) {
	// GIVEN a three seat game where nobody plays Mrs. White
	g, rec := scarletInLounge(t)
	rope := g.Board.Weapon(config.Rope).Current()

	// WHEN Scarlet suggests Mrs. White
	err := g.ProposeSuggestion(config.MrsWhite, config.Rope)

	// THEN an integrity error comes back and nothing has moved
	if !errors.Is(err, ErrSuspectUnassigned) {
		t.Fatalf("expected ErrSuspectUnassigned, got %v", err)
	}
	if g.Turn().HasSuggested || g.Board.Weapon(config.Rope).Current() != rope || len(rec.events) != 0 {
		t.Error("an unassigned suspect must not change the game")
	}
}

func TestDisproofRotation(t *testing.T) {
	t.Run("seats are asked in order and the first holder answers", func(t *testing.T) {
		g, rec := scarletInLounge(t)
		// Plum holds nothing of this claim; Mustard holds the suspect and the Rope.
		must(t, g.ProposeSuggestion(config.ColonelMustard, config.Rope))

		passed := eventsOf[events.ClaimPassedEvent](rec)
		if len(passed) != 1 || passed[0].Seat != 1 {
			t.Errorf("unexpected passes %+v", passed)
		}
		req, ok := g.Pending()
		if !ok || req.Asked != 2 || req.Originator != 0 {
			t.Fatalf("unexpected pending request %+v", req)
		}
		want := []deck.Card{deck.SuspectCard(config.ColonelMustard), deck.WeaponCard(config.Rope)}
		if len(req.Candidates) != 2 || req.Candidates[0] != want[0] || req.Candidates[1] != want[1] {
			t.Errorf("candidates = %v, want %v", req.Candidates, want)
		}
	})

	t.Run("the originator is never asked", func(t *testing.T) {
		g, rec := scarletInLounge(t)
		// Scarlet holds all three cards herself.
		must(t, g.ProposeSuggestion(config.MsScarlet, config.Knife))

		if _, ok := g.Pending(); ok {
			t.Fatal("no seat should be asked")
		}
		passed := eventsOf[events.ClaimPassedEvent](rec)
		if len(passed) != 2 || passed[0].Seat != 1 || passed[1].Seat != 2 {
			t.Errorf("unexpected passes %+v", passed)
		}
		if n := len(eventsOf[events.ClaimUnrefutedEvent](rec)); n != 1 {
			t.Errorf("expected one unrefuted event, got %d", n)
		}
	})

	t.Run("the rotation wraps around the table", func(t *testing.T) {
		// GIVEN Plum, the middle seat, in the Study
		g, rec := scarletInLounge(t)
		must(t, g.EndTurn())
		must(t, g.Move(board.Up)) // Plum into the Study
		rec.reset()

		// WHEN Plum suggests a claim only Scarlet can answer (she holds the Revolver)
		must(t, g.ProposeSuggestion(config.ProfessorPlum, config.Revolver))

		// THEN Mustard passes and the request wraps round to seat 0

		req, ok := g.Pending()
		if !ok || req.Asked != 0 || req.Originator != 1 {
			t.Fatalf("unexpected pending request %+v", req)
		}
		if passed := eventsOf[events.ClaimPassedEvent](rec); len(passed) != 1 || passed[0].Seat != 2 {
			t.Errorf("unexpected passes %+v", passed)
		}
	})
}

func TestPendingDisproofBlocksPlay(t *testing.T) {
	// GIVEN Plum has been asked to show a card for Scarlet's suggestion
	g, rec := scarletInLounge(t)
	must(t, g.ProposeSuggestion(config.ProfessorPlum, config.Rope))

	// WHEN any other intent arrives
	// THEN it is rejected until Plum answers
	waiting := "Waiting for player1 to show a card."
	expectIllegal(t, g.EndTurn(), waiting)
	expectIllegal(t, g.Move(board.Left), waiting)
	expectIllegal(t, g.UndoMove(), waiting)
	expectIllegal(t, g.ProposeAccusation(config.MsScarlet, config.Rope, config.Hall), waiting)

	t.Run("only a candidate card may be shown", func(t *testing.T) {
		expectIllegal(t, g.ConfirmCardChoice(deck.WeaponCard(config.Rope)), "You must show one of the matching cards.")
		if _, ok := g.Pending(); !ok {
			t.Fatal("an invalid choice must keep the request open")
		}
	})

	t.Run("the chosen card goes to the originator", func(t *testing.T) {
		must(t, g.ConfirmCardChoice(deck.SuspectCard(config.ProfessorPlum)))
		shown := eventsOf[events.ClaimDisprovedEvent](rec)
		if len(shown) != 1 || shown[0].Originator != 0 || shown[0].Disprover != 1 || shown[0].RevealedCard != deck.SuspectCard(config.ProfessorPlum) {
			t.Errorf("unexpected disproof events %+v", shown)
		}
		if _, ok := g.Pending(); ok {
			t.Error("the request should be closed")
		}
		expectIllegal(t, g.ConfirmCardChoice(deck.SuspectCard(config.ProfessorPlum)), "No card has been requested.")
	})

	must(t, g.EndTurn())
}

func TestAccusation(t *testing.T) {
	t.Run("a correct accusation wins", func(t *testing.T) {
		// GIVEN Scarlet in her first hallway
		g, rec := newKnownGame(t, classicTrio...)
		must(t, g.Move(board.Down))

		// WHEN she names the envelope exactly
		must(t, g.ProposeAccusation(knownSolution.Suspect, knownSolution.Weapon, knownSolution.Room))

		// THEN she wins, the solution is revealed and play stops

		won := eventsOf[events.GameWonEvent](rec)
		if len(won) != 1 || won[0].Winner != 0 || won[0].LastStanding || won[0].Solution != knownSolution {
			t.Fatalf("unexpected win events %+v", won)
		}
		if g.Phase() != PhaseFinished {
			t.Errorf("phase = %s", g.Phase())
		}
		if solution, ok := g.Solution(); !ok || solution != knownSolution {
			t.Errorf("solution not revealed: %v", solution)
		}
		if g.Board.Character(config.MsScarlet).Current().Position() != (board.Position{Row: 1, Col: 4}) {
			t.Error("an accusation must not move tokens")
		}
		expectIllegal(t, g.EndTurn(), "The game is over.")
	})

	t.Run("wrong accusations eliminate until one player is left", func(t *testing.T) {
		// GIVEN Scarlet in her first hallway
		g, rec := newKnownGame(t, classicTrio...)
		must(t, g.Move(board.Down))

		// WHEN she accuses Plum, whose card Plum holds and shows
		must(t, g.ProposeAccusation(config.ProfessorPlum, config.LeadPipe, config.Kitchen))
		if req, ok := g.Pending(); !ok || req.Asked != 1 || !req.Accusation {
			t.Fatalf("unexpected pending request %+v", req)
		}
		must(t, g.ConfirmCardChoice(deck.SuspectCard(config.ProfessorPlum)))

		// THEN she is out, her hallway is freed and Plum plays next
		if g.Players[0].Active() {
			t.Fatal("Scarlet should be eliminated")
		}
		if g.Board.TileAt(1, 4).Occupied() {
			t.Error("an eliminated player must not block a hallway")
		}
		if g.CurrentSeat() != 1 {
			t.Fatalf("expected seat 1 to play, got %d", g.CurrentSeat())
		}

		// WHEN Plum also accuses wrongly; Mustard passes and the eliminated
		// Scarlet is still asked, holding the Knife
		must(t, g.Move(board.Right))
		must(t, g.ProposeAccusation(config.MsScarlet, config.Knife, config.Study))
		req, ok := g.Pending()
		if !ok || req.Asked != 0 {
			t.Fatalf("eliminated seats must still disprove, got %+v", req)
		}
		must(t, g.ConfirmCardChoice(deck.WeaponCard(config.Knife)))

		// THEN Mustard is the last player standing and wins
		won := eventsOf[events.GameWonEvent](rec)
		if len(won) != 1 || won[0].Winner != 2 || !won[0].LastStanding {
			t.Fatalf("unexpected win events %+v", won)
		}
		if n := len(eventsOf[events.PlayerEliminatedEvent](rec)); n != 2 {
			t.Errorf("expected 2 eliminations, got %d", n)
		}
	})

	t.Run("an unrefuted wrong accusation still eliminates", func(t *testing.T) {
		// GIVEN Scarlet in her first hallway
		g, rec := newKnownGame(t, classicTrio...)
		must(t, g.Move(board.Down))

		// WHEN she accuses with her own Lounge card and two envelope cards
		must(t, g.ProposeAccusation(config.MrsWhite, config.LeadPipe, config.Lounge))

		// THEN nobody can answer, yet she is still eliminated
		if n := len(eventsOf[events.ClaimUnrefutedEvent](rec)); n != 1 {
			t.Errorf("expected an unrefuted event, got %d", n)
		}
		if g.Players[0].Active() || g.CurrentSeat() != 1 || g.Phase() != PhasePlaying {
			t.Error("the game should continue with seat 1")
		}
	})
}
