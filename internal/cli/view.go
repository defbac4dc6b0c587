package cli

import (
	"fmt"
	"os"
	"strings"

	"clueweb/internal/board"
	"clueweb/internal/config"
	"clueweb/internal/deck"
	"clueweb/internal/notebook"
	"clueweb/internal/player"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderBoard draws the grid with every token in place.
func RenderBoard(cfg *config.GameConfig, b *board.Board) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Board")
	header := table.Row{""}
	for col := 0; col < b.Cols(); col++ {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for row := 0; row < b.Rows(); row++ {
		r := table.Row{row}
		for col := 0; col < b.Cols(); col++ {
			r = append(r, tileCell(cfg, b, b.TileAt(row, col)))
		}
		t.AppendRow(r)
	}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignRight}}
	for col := 0; col < b.Cols(); col++ {
		configs = append(configs, table.ColumnConfig{Number: col + 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	t.SetColumnConfigs(configs)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.Style().Title.Align = text.AlignCenter
	t.Render()

	renderWeapons(cfg, b)
}

func tileCell(cfg *config.GameConfig, b *board.Board, tile *board.Tile) string {
	switch tile.Kind {
	case board.KindRoom:
		id, _ := tile.RoomID()
		name := cfg.RoomName(id)
		if tile.IsCorner() {
			name += "*"
		}
		var tags []string
		for _, c := range tile.Characters() {
			tags = append(tags, tag(c.ID()))
		}
		return name + "\n" + strings.Join(tags, " ")
	case board.KindHallway:
		if c := tile.Occupant(); c != nil {
			return tag(c.ID())
		}
		return C.Maybe.Sprint("·")
	case board.KindStartSquare:
		for _, s := range config.AllSuspects() {
			if c := b.Character(s); c != nil && c.Current() == tile {
				return "start\n" + tag(s)
			}
		}
		return "start"
	}
	return ""
}

func tag(s config.Suspect) string {
	return ColorizeSuspect(s, suspectTags[s])
}

func renderWeapons(cfg *config.GameConfig, b *board.Board) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Weapon", "Room"})
	for _, w := range config.AllWeapons() {
		token := b.Weapon(w)
		if token == nil {
			continue
		}
		room, _ := token.Current().RoomID()
		t.AppendRow(table.Row{cfg.WeaponName(w), cfg.RoomName(room)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// RenderHand lists a seat's cards by category.
func RenderHand(cfg *config.GameConfig, p *player.Player) {
	C.Header.Printf("\n--- %s's Hand ---\n", ColorizeSuspect(p.Suspect(), p.Username))
	for _, card := range p.Hand.Cards() {
		C.Info.Printf(" - %s (%s)\n", CardLabel(cfg, card), card.Category)
	}
}

// RenderNotes displays a seat's knowledge grid in a formatted table.
func RenderNotes(cfg *config.GameConfig, players []*player.Player, book *notebook.Notebook) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s's Detective Notes", players[book.Seat()].Username))
	header := table.Row{"ID", "Card", "Type"}
	for _, p := range players {
		header = append(header, ColorizeSuspect(p.Suspect(), p.Username))
	}
	header = append(header, "Envelope")
	t.AppendHeader(header)

	for id, card := range deck.FullSet() {
		if id > 0 && card.Index == 0 {
			t.AppendSeparator()
		}
		row := table.Row{id + 1, CardLabel(cfg, card), card.Category.String()}
		for _, p := range players {
			row = append(row, statusToSymbol(book.Status(card, p.Seat)))
		}
		row = append(row, statusToSymbol(book.EnvelopeStatus(card)))
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()

	if claim, ok := book.Solved(); ok {
		C.Yes.Printf("Your notes point to %s with the %s in the %s.\n",
			cfg.SuspectName(claim.Suspect), cfg.WeaponName(claim.Weapon), cfg.RoomName(claim.Room))
	}
}

func statusToSymbol(status notebook.Status) string {
	switch status {
	case notebook.StatusYes:
		return C.Yes.Sprint("✔")
	case notebook.StatusNo:
		return C.No.Sprint("✖")
	default:
		return C.Maybe.Sprint("?")
	}
}
