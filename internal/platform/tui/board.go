package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/puzzle"
)

// Board layout constants
const (
	tileW      = 3 // " A "
	tileGap    = 1
	headerRows = 3 // title, mode line, blank
	footerRows = 6 // blank, status, blank, three keyboard rows
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// status is the one-line message under the grid.
type status struct {
	text  string
	color core.Color
}

// tileColor maps an outcome to its tile color slot.
func tileColor(o puzzle.Outcome, typed bool) core.Color {
	switch o {
	case puzzle.Exact:
		return core.ColorTileExact
	case puzzle.Present:
		return core.ColorTilePresent
	case puzzle.Absent:
		return core.ColorTileAbsent
	}
	if typed {
		return core.ColorTileTyped
	}
	return core.ColorTileEmpty
}

// stateStatus describes the round state when there is no flash message.
func stateStatus(snap puzzle.Snapshot) status {
	switch snap.State {
	case puzzle.StateAwaitingWord:
		return status{"Loading words...", core.ColorGray}
	case puzzle.StateWon:
		return status{fmt.Sprintf("Solved in %d of %d! ctrl+n for a new word", snap.Attempts, snap.MaxAttempts), core.ColorGreen}
	case puzzle.StateLost:
		return status{fmt.Sprintf("The word was %s. ctrl+n for a new word", strings.ToUpper(snap.Answer)), core.ColorRed}
	default:
		return status{fmt.Sprintf("Attempt %d of %d", snap.Row+1, snap.MaxAttempts), core.ColorGray}
	}
}

// rowWidth returns the width of n tiles with gaps.
func rowWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*(tileW+tileGap) - tileGap
}

// drawBoard renders a snapshot onto the screen.
// An empty st.text falls back to the state description.
func drawBoard(s *core.Screen, snap puzzle.Snapshot, st status) {
	s.Clear()

	rows := snap.MaxAttempts
	gap := 0
	if s.Height() >= headerRows+2*rows-1+footerRows {
		gap = 1
	}
	height := headerRows + rows + (rows-1)*gap + footerRows
	width := core.Max(rowWidth(len(keyboardRows[0])), rowWidth(snap.WordLength))
	area := core.Centered(width, height, s.Width(), s.Height())

	// Frame only when it fits entirely
	frame := area.Inset(2, 1)
	bounds := core.NewRect(0, 0, s.Width(), s.Height())
	if bounds.Contains(frame.X, frame.Y) && bounds.Contains(frame.Right()-1, frame.Bottom()-1) {
		s.DrawBox(frame, core.ColorGray)
	}

	y := area.Y
	s.DrawTextCentered(y, "W O R D L E", core.ColorBrightWhite)
	y++
	if snap.Mode != "" {
		line := fmt.Sprintf("%s · %d letters · %d attempts", snap.Mode.Title(), snap.WordLength, snap.MaxAttempts)
		s.DrawTextCentered(y, line, core.ColorGray)
	}
	y += 2

	gridX := (s.Width() - rowWidth(snap.WordLength)) / 2
	for r := 0; r < rows; r++ {
		for c := 0; c < snap.WordLength; c++ {
			var cell puzzle.Cell
			if r < len(snap.Grid) && c < len(snap.Grid[r]) {
				cell = snap.Grid[r][c]
			}
			x := gridX + c*(tileW+tileGap)

			letter := '·'
			if !cell.Empty() {
				letter = rune(cell.Letter)
			} else if snap.State == puzzle.StateInProgress && r == snap.Row && c == snap.Column+1 {
				letter = '_'
			}
			drawTile(s, x, y, letter, tileColor(cell.Outcome, !cell.Empty()))
		}
		y += 1 + gap
	}
	y -= gap

	if st.text == "" {
		st = stateStatus(snap)
	}
	y++
	s.DrawTextCentered(y, st.text, st.color)
	y += 2

	for _, line := range keyboardRows {
		x := (s.Width() - rowWidth(len(line))) / 2
		for i, k := range line {
			o := snap.KeyState(k)
			color := tileColor(o, true)
			drawTile(s, x+i*(tileW+tileGap), y, k, color)
		}
		y++
	}
}

// drawTile draws a single letter tile.
func drawTile(s *core.Screen, x, y int, letter rune, color core.Color) {
	s.SetColored(x, y, ' ', color)
	s.SetColored(x+1, y, letter, color)
	s.SetColored(x+2, y, ' ', color)
}
