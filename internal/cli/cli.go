package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/game"
	"clueweb/internal/notebook"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// maxPasswordAttempts bounds how often a seat may retry its password.
const maxPasswordAttempts = 3

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)
	return &CLI{
		log:  log,
		line: line,
	}
}

// session is one hot-seat game and the per-seat state the screen needs.
type session struct {
	cfg      *config.GameConfig
	game     *game.Game
	renderer *Renderer
	books    []*notebook.Notebook
	chooser  notebook.Chooser
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		seats := 0
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				c.printUsage()
				return fmt.Errorf("invalid player count '%s'", args[1])
			}
			seats = n
		}
		return c.runHotSeat(cfg, seats, rand)
	case "board":
		RenderBoard(cfg, board.Classic())
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) runHotSeat(cfg *config.GameConfig, seats int, rand *rand.Rand) error {
	if seats == 0 {
		n, err := c.promptForInt(fmt.Sprintf("How many players? (%d-%d): ", cfg.MinPlayers, cfg.MaxPlayers), cfg.MinPlayers, cfg.MaxPlayers)
		if err != nil {
			C.Info.Println("\nGoodbye!")
			return nil
		}
		seats = n
	}
	for {
		s, err := c.newSession(cfg, seats, rand)
		if err != nil {
			return err
		}
		if s == nil {
			C.Info.Println("\nGoodbye!")
			return nil
		}
		if quit := c.playLoop(s); quit {
			C.Info.Println("\nGoodbye!")
			return nil
		}
		if !c.promptForYesNo("\nPlay again with the same number of players?") {
			C.Info.Println("Thanks for playing!")
			return nil
		}
	}
}

// newSession builds a game, runs the seat setup dialog and deals. A nil
// session means the user cancelled.
func (c *CLI) newSession(cfg *config.GameConfig, seats int, rand *rand.Rand) (*session, error) {
	builder := game.NewBuilder(cfg, c.log, rand).WithSeats(seats)
	renderer := NewRenderer(cfg)
	builder.EventManager().Subscribe(renderer)

	g, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}
	renderer.Attach(g)
	s := &session{
		cfg:      cfg,
		game:     g,
		renderer: renderer,
		chooser:  notebook.DeterministicChooser{},
	}
	// Notebooks are keyed by the final seat order, which every event uses.
	for i := 0; i < seats; i++ {
		book := notebook.New(i, seats, c.log.WithField("game", g.ID))
		s.books = append(s.books, book)
		g.EventManager.Subscribe(book)
	}

	C.Header.Printf("\n--- Seating %d players ---\n", seats)
	for seat := 0; seat < seats; seat++ {
		if err := c.setupSeat(s, seat); err != nil {
			if errors.Is(err, errCancelled) {
				return nil, nil
			}
			return nil, err
		}
	}
	if err := g.Start(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	RenderBoard(cfg, g.Board)
	return s, nil
}

func (c *CLI) setupSeat(s *session, seat int) error {
	for {
		C.Header.Printf("\nSeat %d\n", seat+1)
		username, err := c.promptForString("Username: ")
		if err != nil {
			return err
		}
		password, err := c.promptForPassword("Password: ")
		if err != nil {
			return err
		}
		character, err := c.promptForSuspect(s.cfg, "Choose your character:", s.game.FreeCharacters())
		if err != nil {
			return err
		}
		err = s.game.SetupPlayer(seat, username, password, character)
		if err == nil {
			return nil
		}
		if !game.IsIllegalAction(err) {
			return err
		}
		// the renderer already printed the reason
	}
}

// playLoop runs turns until the game is over. It reports whether the user quit.
func (c *CLI) playLoop(s *session) bool {
	g := s.game
	for g.Phase() == game.PhasePlaying {
		if _, pending := g.Pending(); pending {
			if err := c.handleDisproof(s); errors.Is(err, errCancelled) {
				C.Warn.Println("A card must be shown before play can continue.")
				if c.promptForYesNo("Abandon this game?") {
					return true
				}
			}
			continue
		}

		p := g.CurrentPlayer()
		prompt := fmt.Sprintf("(%s) ", p.Username)
		input, err := c.line.Prompt(prompt)
		if err != nil {
			if c.promptForYesNo("\nAbandon this game?") {
				return true
			}
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "move", "m":
			if len(parts) < 2 {
				C.Warn.Println("Usage: move <up|down|left|right>")
				continue
			}
			dir, ok := board.ParseDirection(parts[1])
			if !ok {
				C.Warn.Printf("Unknown direction '%s'.\n", parts[1])
				continue
			}
			if g.Move(dir) == nil {
				RenderBoard(s.cfg, g.Board)
			}
		case "undo", "u":
			if g.UndoMove() == nil {
				RenderBoard(s.cfg, g.Board)
			}
		case "shortcut", "sc":
			if g.UseShortcut() == nil {
				RenderBoard(s.cfg, g.Board)
			}
		case "suggest", "s":
			c.handleSuggestCommand(s)
		case "accuse", "a":
			c.handleAccuseCommand(s)
		case "end", "e":
			g.EndTurn()
		case "board", "b":
			RenderBoard(s.cfg, g.Board)
		case "hand", "ha":
			if c.unlockSeat(s, g.CurrentSeat()) {
				RenderHand(s.cfg, p)
			}
		case "notes", "n":
			if c.unlockSeat(s, g.CurrentSeat()) {
				RenderNotes(s.cfg, g.Players, s.books[g.CurrentSeat()])
			}
		case "hint", "hi":
			c.handleHintCommand(s)
		case "help", "h":
			c.printTurnHelp()
		case "quit", "q":
			if c.promptForYesNo("Abandon this game?") {
				return true
			}
		default:
			C.Warn.Printf("Unknown command '%s'. Type 'help' for a list of commands.\n", cmd)
		}
	}
	return false
}

// handleSuggestCommand only offers suspects that belong to a seat.
func (c *CLI) handleSuggestCommand(s *session) {
	suspect, err := c.promptForSuspect(s.cfg, "Who do you suggest?", s.game.AssignedCharacters())
	if err != nil {
		return
	}
	weapon, err := c.promptForWeapon(s.cfg, "With which weapon?")
	if err != nil {
		return
	}
	if err := s.game.ProposeSuggestion(suspect, weapon); err != nil {
		if !game.IsIllegalAction(err) {
			C.Warn.Printf("Suggestion failed: %v\n", err)
		}
		return
	}
	RenderBoard(s.cfg, s.game.Board)
}

// handleHintCommand asks the current seat's notebook for a suggestion.
func (c *CLI) handleHintCommand(s *session) {
	g := s.game
	room, ok := g.CurrentPlayer().Character.Current().RoomID()
	if !ok {
		C.Warn.Println("Hints are only given in a room.")
		return
	}
	if !c.unlockSeat(s, g.CurrentSeat()) {
		return
	}
	claim, strategy := s.books[g.CurrentSeat()].Hint(room, g.AssignedCharacters(), s.chooser)
	C.Info.Printf("Your notes suggest %s with the %s (%s).\n",
		ColorizeSuspect(claim.Suspect, s.cfg.SuspectName(claim.Suspect)), s.cfg.WeaponName(claim.Weapon), strategy)
}

func (c *CLI) handleAccuseCommand(s *session) {
	C.Warn.Println("A wrong accusation takes you out of the game.")
	suspect, err := c.promptForSuspect(s.cfg, "Who did it?", config.AllSuspects())
	if err != nil {
		return
	}
	weapon, err := c.promptForWeapon(s.cfg, "With which weapon?")
	if err != nil {
		return
	}
	room, err := c.promptForRoom(s.cfg, "In which room?")
	if err != nil {
		return
	}
	question := fmt.Sprintf("Accuse %s with the %s in the %s?", s.cfg.SuspectName(suspect), s.cfg.WeaponName(weapon), s.cfg.RoomName(room))
	if !c.promptForYesNo(question) {
		return
	}
	s.game.ProposeAccusation(suspect, weapon, room)
}

// handleDisproof lets the asked seat pick a card, then shows it to the
// originator only.
func (c *CLI) handleDisproof(s *session) error {
	g := s.game
	req, _ := g.Pending()
	asked, originator := g.Players[req.Asked], g.Players[req.Originator]

	C.Header.Printf("\nPass the screen to %s, who must show a card.\n", ColorizeSuspect(asked.Suspect(), asked.Username))
	if !c.unlockSeat(s, req.Asked) {
		return errCancelled
	}

	recommended, _ := s.books[req.Asked].Recommend(req.Originator, req.Candidates, s.chooser)
	var options, plain []string
	for _, card := range req.Candidates {
		label := CardLabel(s.cfg, card)
		if card == recommended {
			label += C.Debug.Sprint(" (recommended)")
		}
		options = append(options, label)
		plain = append(plain, card.Name(s.cfg))
	}
	i, err := c.promptForSelection(fmt.Sprintf("Which card do you show %s?", originator.Username), options, plain)
	if err != nil {
		return err
	}
	card := req.Candidates[i]
	if err := g.ConfirmCardChoice(card); err != nil {
		return err
	}

	c.revealCard(s, req.Originator, req.Asked, card)
	return nil
}

func (c *CLI) revealCard(s *session, originator, disprover int, card deck.Card) {
	o := s.game.Players[originator]
	C.Header.Printf("\nPass the screen back to %s.\n", ColorizeSuspect(o.Suspect(), o.Username))
	if !c.unlockSeat(s, originator) {
		C.Warn.Println("The card stays hidden. It is recorded in your notes.")
		return
	}
	C.Yes.Printf("%s showed you: %s\n", s.game.Players[disprover].Username, CardLabel(s.cfg, card))
}

// unlockSeat asks for a seat's password before private information is shown.
func (c *CLI) unlockSeat(s *session, seat int) bool {
	p := s.game.Players[seat]
	for attempt := 0; attempt < maxPasswordAttempts; attempt++ {
		pw, err := c.promptForPassword(fmt.Sprintf("%s, enter your password: ", p.Username))
		if err != nil {
			return false
		}
		if s.game.VerifySeat(seat, pw) {
			return true
		}
		C.No.Println("Wrong password.")
	}
	return false
}
