package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mcoot/othello/internal/model"
)

const controls = "hjkl/arrows move   enter play   p pass   q quit"

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorBlack)
	lightStyle  = boardStyle.Foreground(tcell.ColorWhite).Bold(true)
	darkStyle   = boardStyle.Foreground(tcell.ColorBlack).Bold(true)
	hintStyle   = boardStyle.Foreground(tcell.ColorLightGreen)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Run shows the session in the terminal until the user quits
func Run(session *Session) error {
	app := tview.NewApplication()

	status := tview.NewTextView().SetDynamicColors(false)
	board := newBoardView(session)

	refresh := func() {
		var b strings.Builder
		b.WriteString(session.Status())
		b.WriteString("\n")
		if msg := session.Message(); msg != "" {
			b.WriteString(msg)
		}
		b.WriteString("\n\n")
		b.WriteString(controls)
		status.SetText(b.String())
	}
	refresh()

	board.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if handleKey(session, event) {
			app.Stop()
			return nil
		}
		refresh()
		return nil
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board, model.Size+2, 0, true).
		AddItem(status, 0, 1, false)

	return app.SetRoot(layout, true).SetFocus(board).Run()
}

// handleKey applies a key press to the session and reports whether to quit.
// Rule errors are already recorded as the session message.
func handleKey(session *Session, event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		session.MoveCursor(-1, 0)
	case tcell.KeyDown:
		session.MoveCursor(1, 0)
	case tcell.KeyLeft:
		session.MoveCursor(0, -1)
	case tcell.KeyRight:
		session.MoveCursor(0, 1)
	case tcell.KeyEnter:
		_ = session.PlayCursor()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			session.MoveCursor(-1, 0)
		case 'j':
			session.MoveCursor(1, 0)
		case 'h':
			session.MoveCursor(0, -1)
		case 'l':
			session.MoveCursor(0, 1)
		case ' ':
			_ = session.PlayCursor()
		case 'p':
			_ = session.Pass()
		case 'q':
			return true
		}
	}
	return false
}

// newBoardView draws the position two columns per cell with 0-based labels
func newBoardView(session *Session) *tview.Box {
	box := tview.NewBox()
	box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		p := session.Position()
		cursor := session.Cursor()

		legal := make(map[model.Action]bool)
		for _, a := range session.LegalMoves() {
			legal[a] = true
		}

		for col := 0; col < model.Size; col++ {
			drawText(screen, x+3+col*2, y, fmt.Sprintf("%d", col), labelStyle)
		}

		for row := 0; row < model.Size; row++ {
			drawText(screen, x, y+1+row, fmt.Sprintf("%d", row), labelStyle)
			for col := 0; col < model.Size; col++ {
				a := model.Action{Row: row, Col: col}
				r, style := cellLook(p.At(row, col), legal[a])
				if a == cursor && !session.Finished() {
					style = cursorStyle
				}
				cx := x + 2 + col*2
				screen.SetContent(cx, y+1+row, ' ', nil, boardStyle)
				screen.SetContent(cx+1, y+1+row, r, nil, style)
			}
			screen.SetContent(x+2+model.Size*2, y+1+row, ' ', nil, boardStyle)
		}

		return x, y, width, height
	})
	return box
}

func cellLook(c model.Cell, legal bool) (rune, tcell.Style) {
	switch {
	case c == model.Light:
		return 'O', lightStyle
	case c == model.Dark:
		return 'X', darkStyle
	case legal:
		return '*', hintStyle
	default:
		return '.', boardStyle
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
