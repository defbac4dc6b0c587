package game

import (
	"fmt"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/events"

	"github.com/sirupsen/logrus"
)

// pendingClaim is a suggestion or accusation whose disproof rotation is in
// progress. While it is set, only ConfirmCardChoice is accepted.
type pendingClaim struct {
	originator int
	claim      deck.Claim
	accusation bool
	offset     int
	asked      int
	candidates []deck.Card
}

// PendingRequest describes a seat that has to pick a card to show.
type PendingRequest struct {
	Asked      int
	Originator int
	Claim      deck.Claim
	Candidates []deck.Card
	Accusation bool
}

// Pending returns the open disproof request, if any.
func (g *Game) Pending() (PendingRequest, bool) {
	pc := g.pending
	if pc == nil {
		return PendingRequest{}, false
	}
	return PendingRequest{
		Asked:      pc.asked,
		Originator: pc.originator,
		Claim:      pc.claim,
		Candidates: append([]deck.Card(nil), pc.candidates...),
		Accusation: pc.accusation,
	}, true
}

// ProposeSuggestion names a suspect and a weapon in the room the current
// character stands in. The suspect's token and the weapon are pulled into the
// room, then the other seats are asked to disprove it.
func (g *Game) ProposeSuggestion(suspect config.Suspect, weapon config.Weapon) error {
	const action = "suggestion"
	if err := g.guard(action); err != nil {
		return err
	}
	if !suspect.Valid() || !weapon.Valid() {
		return g.reject(g.current, action, "Unknown suspect or weapon.")
	}
	p := g.CurrentPlayer()
	room := p.Character.Current()
	switch {
	case room.Kind == board.KindStartSquare:
		return g.reject(g.current, action, "Your first move must be to the nearest hallway.")
	case !room.IsRoom():
		return g.reject(g.current, action, "To make a suggestion you must be in a room.")
	case g.turn.HasSuggested:
		return g.reject(g.current, action, "You have already made a suggestion this turn.")
	case !g.turn.HasMoved && !p.PulledBySuggestion():
		if g.Board.IsCornerRoom(room) {
			return g.reject(g.current, action, "To make a suggestion here you must re-enter the room from a hallway or take the shortcut and suggest in the opposite room.")
		}
		return g.reject(g.current, action, "To make a suggestion here you must re-enter the room from a hallway.")
	}
	owner := g.ownerOf(suspect)
	if owner == nil {
		g.log.WithField("suspect", suspect).Error("Suggested suspect has no seat")
		return fmt.Errorf("%w: %s", ErrSuspectUnassigned, suspect)
	}

	roomID, _ := room.RoomID()
	claim := deck.Claim{Suspect: suspect, Weapon: weapon, Room: roomID}
	if !g.turn.HasMoved {
		p.SetPulledBySuggestion(false)
	}
	g.turn.HasSuggested = true

	if c := owner.Character; c.Current() != room {
		from := c.Current()
		if err := g.Board.RelocateCharacter(c, room); err != nil {
			return fmt.Errorf("failed to pull %s into %s: %w", suspect, roomID, err)
		}
		owner.SetPulledBySuggestion(true)
		g.EventManager.Publish(events.TokenMovedEvent{Seat: owner.Seat, Character: suspect, From: from.Position(), To: room.Position()})
	}
	if w := g.Board.Weapon(weapon); w.Current() != room {
		from := w.Current()
		if err := g.Board.PlaceWeapon(weapon, room); err != nil {
			return fmt.Errorf("failed to move %s into %s: %w", weapon, roomID, err)
		}
		g.EventManager.Publish(events.WeaponMovedEvent{Weapon: weapon, From: from.Position(), To: room.Position()})
	}

	g.log.WithFields(logrus.Fields{"seat": g.current, "claim": claim}).Info("Suggestion made")
	g.EventManager.Publish(events.SuggestionMadeEvent{Seat: g.current, Claim: claim})
	g.startDisproof(claim, false)
	return nil
}

// ProposeAccusation checks a claim against the envelope. A correct accusation
// wins; a wrong one is still shown around the table before the accuser is
// eliminated.
func (g *Game) ProposeAccusation(suspect config.Suspect, weapon config.Weapon, room config.Room) error {
	const action = "accusation"
	if err := g.guard(action); err != nil {
		return err
	}
	claim := deck.Claim{Suspect: suspect, Weapon: weapon, Room: room}
	if !claim.Valid() {
		return g.reject(g.current, action, "Unknown suspect, weapon or room.")
	}
	if g.CurrentPlayer().Character.Current().Kind == board.KindStartSquare {
		return g.reject(g.current, action, "Your first move must be to the nearest hallway.")
	}
	if g.turn.HasAccused {
		return g.reject(g.current, action, "You have already made an accusation this turn.")
	}

	g.turn.HasAccused = true
	correct := g.envelope.Matches(claim)
	g.log.WithFields(logrus.Fields{"seat": g.current, "claim": claim, "correct": correct}).Info("Accusation made")
	g.EventManager.Publish(events.AccusationMadeEvent{Seat: g.current, Claim: claim, Correct: correct})
	if correct {
		g.finish(g.current, false)
		return nil
	}
	g.startDisproof(claim, true)
	return nil
}

// ConfirmCardChoice answers the open disproof request with one of the
// candidate cards.
func (g *Game) ConfirmCardChoice(card deck.Card) error {
	const action = "show card"
	if g.phase != PhasePlaying || g.pending == nil {
		return g.reject(-1, action, "No card has been requested.")
	}
	pc := g.pending
	chosen := false
	for _, c := range pc.candidates {
		if c == card {
			chosen = true
			break
		}
	}
	if !chosen {
		return g.reject(pc.asked, action, "You must show one of the matching cards.")
	}
	g.log.WithFields(logrus.Fields{"originator": pc.originator, "disprover": pc.asked}).Debugf("Claim disproved with %s", card)
	g.EventManager.Publish(events.ClaimDisprovedEvent{
		Originator:   pc.originator,
		Disprover:    pc.asked,
		Claim:        pc.claim,
		RevealedCard: card,
	})
	g.completeDisproof()
	return nil
}

func (g *Game) startDisproof(claim deck.Claim, accusation bool) {
	g.pending = &pendingClaim{originator: g.current, claim: claim, accusation: accusation}
	g.advanceDisproof()
}

// advanceDisproof asks the seats after the originator in order. Eliminated
// seats are asked too. It stops at the first seat holding a matching card.
func (g *Game) advanceDisproof() {
	pc := g.pending
	n := len(g.Players)
	for pc.offset < n-1 {
		pc.offset++
		seat := (pc.originator + pc.offset) % n
		if matching := g.Players[seat].MatchingCards(pc.claim); len(matching) > 0 {
			pc.asked = seat
			pc.candidates = matching
			g.log.WithField("seat", seat).Debug("Waiting for a card to be shown")
			g.EventManager.Publish(events.DisproofRequestEvent{
				Asked:      seat,
				Originator: pc.originator,
				Claim:      pc.claim,
				Candidates: append([]deck.Card(nil), matching...),
			})
			return
		}
		g.EventManager.Publish(events.ClaimPassedEvent{Seat: seat, Originator: pc.originator, Claim: pc.claim})
	}
	g.log.WithField("claim", pc.claim).Info("Nobody could disprove the claim")
	g.EventManager.Publish(events.ClaimUnrefutedEvent{Originator: pc.originator, Claim: pc.claim})
	g.completeDisproof()
}

func (g *Game) completeDisproof() {
	pc := g.pending
	g.pending = nil
	if pc.accusation {
		g.eliminate(pc.originator)
	}
}

// eliminate removes a seat from the rotation after a wrong accusation. Its
// token stays where it is but no longer blocks a hallway.
func (g *Game) eliminate(seat int) {
	p := g.Players[seat]
	p.Eliminate()
	g.Board.ReleaseCharacter(p.Character)
	g.log.WithField("seat", seat).Infof("%s is eliminated", p.Username)
	g.EventManager.Publish(events.PlayerEliminatedEvent{Seat: seat})

	var remaining []int
	for _, o := range g.Players {
		if o.Active() {
			remaining = append(remaining, o.Seat)
		}
	}
	if len(remaining) == 1 {
		g.finish(remaining[0], true)
		return
	}
	g.advanceTurn()
}

func (g *Game) finish(winner int, lastStanding bool) {
	g.phase = PhaseFinished
	g.winner = winner
	g.pending = nil
	g.log.WithFields(logrus.Fields{"winner": winner, "last_standing": lastStanding}).Infof("Game won by %s", g.Players[winner])
	g.EventManager.Publish(events.GameWonEvent{
		Winner:       winner,
		Solution:     g.envelope.Solution(),
		LastStanding: lastStanding,
	})
}
