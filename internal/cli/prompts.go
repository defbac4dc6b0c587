package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"clueweb/internal/config"
	"clueweb/internal/deck"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// errCancelled is returned by prompts when the user aborts with ctrl-c.
var errCancelled = errors.New("cancelled")

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps suspects to specific colors for display.
var SuspectColors = map[config.Suspect]*color.Color{
	config.MsScarlet:      color.New(color.FgRed),
	config.ColonelMustard: color.New(color.FgYellow),
	config.MrsWhite:       color.New(color.FgWhite),
	config.MrGreen:        color.New(color.FgGreen),
	config.MrsPeacock:     color.New(color.FgBlue),
	config.ProfessorPlum:  color.New(color.FgMagenta),
}

// suspectTags are the two letter board markers.
var suspectTags = map[config.Suspect]string{
	config.MsScarlet:      "Sc",
	config.ProfessorPlum:  "Pl",
	config.ColonelMustard: "Mu",
	config.MrsPeacock:     "Pe",
	config.MrGreen:        "Gr",
	config.MrsWhite:       "Wh",
}

// ColorizeSuspect returns text in the suspect's color.
func ColorizeSuspect(s config.Suspect, text string) string {
	if c, ok := SuspectColors[s]; ok {
		return c.Sprint(text)
	}
	return text
}

// CardLabel returns a card's display name, colored if it's a suspect.
func CardLabel(cfg *config.GameConfig, card deck.Card) string {
	name := card.Name(cfg)
	if card.Category == config.CategorySuspect {
		return ColorizeSuspect(config.Suspect(card.Index), name)
	}
	return name
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Clue Hot Seat ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/clueweb play [players]")
	fmt.Println("    Play a hot-seat game on this terminal (2-6 players).")
	fmt.Println("  go run ./cmd/clueweb board")
	fmt.Println("    Print the empty board.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Enable detailed game logic tracing.")
	fmt.Println("  -config path       Use another presentation table.")
}

func (c *CLI) printTurnHelp() {
	C.Header.Println("\n--- Turn Commands ---")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"move <dir>", "m", "Move one tile up, down, left or right."},
		{"undo", "u", "Take back this turn's move."},
		{"shortcut", "sc", "Take the secret passage from a corner room."},
		{"suggest", "s", "Suggest a suspect and weapon in your room."},
		{"accuse", "a", "Accuse a suspect, weapon and room. A wrong guess eliminates you."},
		{"end", "e", "End your turn."},
		{"board", "b", "Display the board."},
		{"hand", "ha", "Display your hand (asks for your password)."},
		{"notes", "n", "Display your detective notes (asks for your password)."},
		{"hint", "hi", "Ask your notes what to suggest here (asks for your password)."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Abandon the game."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) promptForString(prompt string) (string, error) {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			return "", errCancelled
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed, nil
		}
	}
}

func (c *CLI) promptForPassword(prompt string) (string, error) {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.PasswordPrompt("")
		if err != nil {
			return "", errCancelled
		}
		if strings.TrimSpace(input) != "" {
			return input, nil
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) (int, error) {
	for {
		input, err := c.promptForString(prompt)
		if err != nil {
			return 0, err
		}
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num, nil
	}
}

func (c *CLI) promptForYesNo(prompt string) bool {
	input, err := c.promptForString(prompt + " (y/n): ")
	if err != nil {
		return false
	}
	input = strings.ToLower(input)
	return input == "y" || input == "yes"
}

// promptForSelection lists options and returns the chosen index. Options are
// already colored; plain is used to match typed names.
func (c *CLI) promptForSelection(prompt string, options, plain []string) (int, error) {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, opt)
		}
		input, err := c.promptForString("Enter number or name: ")
		if err != nil {
			return 0, err
		}
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return num - 1, nil
		}
		for i, opt := range plain {
			if strings.EqualFold(opt, input) {
				return i, nil
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}

func (c *CLI) promptForSuspect(cfg *config.GameConfig, prompt string, suspects []config.Suspect) (config.Suspect, error) {
	var options, plain []string
	for _, s := range suspects {
		options = append(options, ColorizeSuspect(s, cfg.SuspectName(s)))
		plain = append(plain, cfg.SuspectName(s))
	}
	i, err := c.promptForSelection(prompt, options, plain)
	if err != nil {
		return 0, err
	}
	return suspects[i], nil
}

func (c *CLI) promptForWeapon(cfg *config.GameConfig, prompt string) (config.Weapon, error) {
	weapons := config.AllWeapons()
	var names []string
	for _, w := range weapons {
		names = append(names, cfg.WeaponName(w))
	}
	i, err := c.promptForSelection(prompt, names, names)
	if err != nil {
		return 0, err
	}
	return weapons[i], nil
}

func (c *CLI) promptForRoom(cfg *config.GameConfig, prompt string) (config.Room, error) {
	rooms := config.AllRooms()
	var names []string
	for _, r := range rooms {
		names = append(names, cfg.RoomName(r))
	}
	i, err := c.promptForSelection(prompt, names, names)
	if err != nil {
		return 0, err
	}
	return rooms[i], nil
}

// completer offers the turn commands for tab completion.
func completer(line string) []string {
	var out []string
	for _, cmd := range []string{"move up", "move down", "move left", "move right", "undo", "shortcut", "suggest", "accuse", "end", "board", "hand", "notes", "hint", "help", "quit"} {
		if strings.HasPrefix(cmd, strings.ToLower(line)) {
			out = append(out, cmd)
		}
	}
	return out
}
