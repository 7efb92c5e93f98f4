package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcoot/othello/internal/api/response"
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/bot"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter writing to stdout and stderr
func NewOutput(format string) *Output {
	return NewOutputTo(format, os.Stdout, os.Stderr)
}

// NewOutputTo creates an Output formatter writing to the given streams
func NewOutputTo(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.LegalMoves:
		o.printLegalMoves(v.SideToMove, v.Moves)
	case response.MoveResponse:
		o.printMoveResponse(v)
	case response.Analysis:
		o.printAnalysis(v)
	case response.ApplyResponse:
		o.printApply(v)
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	case *Config:
		o.printConfig(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.out, format, args...)
}

func (o *Output) printGame(g response.Game) {
	o.printf("Game: %s\n", g.ID)
	o.printf("State: %s\n", g.State)
	o.printf("Light (O): %s\n", g.Light)
	o.printf("Dark (X): %s\n", g.Dark)
	o.printf("Moves played: %d\n", len(g.Moves))
	if last := len(g.Moves); last > 0 {
		m := g.Moves[last-1]
		o.printf("Last move: %s %s\n", m.Side, m)
	}
	o.printf("\n")
	o.printBoardFromEncoding(g.Position, g.LegalMoves)
	o.printf("\n")
	o.printScore(g.Score)

	if g.Result != nil {
		o.printWinner(g.Result.Winner)
		return
	}
	if g.State == string(model.GameStateInProgress) {
		o.printf("To move: %s (%s)\n", g.SideToMove, g.Status)
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		o.printf("No games\n")
		return
	}
	for _, g := range l.Games {
		status := g.State
		if g.Winner != nil {
			status += ", winner: " + winnerText(*g.Winner)
		} else if g.State == string(model.GameStateInProgress) {
			status += ", " + g.SideToMove + " to move"
		}
		o.printf("%s  %-7s vs %-7s  %2d moves  (%s)\n", g.ID, g.Light, g.Dark, g.Moves, status)
	}
}

func (o *Output) printLegalMoves(side string, moves []model.Action) {
	if len(moves) == 0 {
		o.printf("No legal moves for %s\n", side)
		return
	}
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	o.printf("Legal moves for %s: %s\n", side, strings.Join(texts, " "))
}

func (o *Output) printMoveResponse(r response.MoveResponse) {
	for _, a := range r.BotActions {
		switch a.Type {
		case bot.ActionMove:
			o.printf("Bot (%s) played %s\n", a.Side, a.Action)
		case bot.ActionPass:
			o.printf("Bot (%s) passed\n", a.Side)
		case bot.ActionGameComplete:
			o.printf("Game complete!\n")
		}
	}
	o.printGame(r.Game)
}

func (o *Output) printAnalysis(a response.Analysis) {
	o.printBoardFromEncoding(a.Position, a.LegalMoves)
	o.printf("\n")
	o.printScore(a.Score)
	o.printf("Status: %s\n", a.Status)
	if a.Winner != nil {
		o.printWinner(*a.Winner)
		return
	}
	o.printLegalMoves(a.SideToMove, a.LegalMoves)
}

func (o *Output) printApply(a response.ApplyResponse) {
	o.printf("Position: %s\n", a.Position)
	o.printf("Flipped: %d\n\n", len(a.Flipped))
	o.printBoardFromEncoding(a.Position, nil)
}

func (o *Output) printConfig(c *Config) {
	path := c.Path
	if path == "" {
		path = "(none)"
	}
	o.printf("Config file: %s\n", path)
	o.printf("Server: %s\n", c.ServerURL)
	o.printf("Output: %s\n", c.Output)
	o.printf("Bot: %s\n", c.Bot)
}

func (o *Output) printScore(s response.Score) {
	o.printf("Score: O %d - X %d (%d empty)\n", s.Light, s.Dark, s.Empty)
}

func (o *Output) printWinner(winner string) {
	o.printf("Winner: %s\n", winnerText(winner))
}

func (o *Output) printBoardFromEncoding(encoded string, marks []model.Action) {
	p, err := model.DecodePosition(encoded)
	if err != nil {
		o.printf("%s\n", encoded)
		return
	}
	RenderBoard(o.out, p, marks)
}

func winnerText(winner string) string {
	if winner == "" {
		return "draw"
	}
	return winner
}

// RenderBoard draws p as a grid of O (light), X (dark) and . (empty).
// Cells in marks are drawn as *.
func RenderBoard(w io.Writer, p model.Position, marks []model.Action) {
	marked := make(map[model.Action]bool, len(marks))
	for _, m := range marks {
		marked[m] = true
	}

	// Print column headers
	var b strings.Builder
	b.WriteString("    ")
	for col := 0; col < model.Size; col++ {
		fmt.Fprintf(&b, " %d ", col)
	}
	b.WriteString("\n")

	border := "   +" + strings.Repeat("---", model.Size) + "+\n"
	b.WriteString(border)

	for row := 0; row < model.Size; row++ {
		fmt.Fprintf(&b, " %d |", row)
		for col := 0; col < model.Size; col++ {
			b.WriteString(" ")
			b.WriteRune(cellRune(p.At(row, col), marked[model.Action{Row: row, Col: col}]))
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}

	b.WriteString(border)
	_, _ = io.WriteString(w, b.String())
}

func cellRune(c model.Cell, marked bool) rune {
	switch {
	case c == model.Light:
		return 'O'
	case c == model.Dark:
		return 'X'
	case marked:
		return '*'
	default:
		return '.'
	}
}
