//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/rhinote/types"
)

// A Window is one note: a document plus the chrome used to show it.
// The window owns its document and delegates persistence to it, refreshing
// its title after every edit, save, and load.
type Window struct {
	number   int
	appName  string
	document *Document
	accent   types.Color
	title    string
	cursor   types.Point // cursor position
	offset   types.Size  // display offset
	size     types.Size  // size of the text area at the last render
	tabWidth int
	state    CloseState
	registry *Registry
	undo     []operation
	lastEdit int
}

func (w *Window) GetNumber() int {
	return w.number
}

func (w *Window) GetDocument() *Document {
	return w.document
}

func (w *Window) GetAccent() types.Color {
	return w.accent
}

func (w *Window) GetTitle() string {
	return w.title
}

func (w *Window) GetCursor() types.Point {
	return w.cursor
}

func (w *Window) GetState() CloseState {
	return w.state
}

func (w *Window) IsModified() bool {
	return w.document.IsModified()
}

// RefreshTitle recomputes the title from the state of the document.
func (w *Window) RefreshTitle() {
	parts := []string{w.appName}
	if path := w.document.GetPath(); path != "" {
		parts = append(parts, path)
	}
	if w.document.IsModified() {
		parts = append(parts, "*")
	}
	w.title = strings.Join(parts, " ")
}

func (w *Window) Edit(text string) {
	w.record(editReplace)
	w.document.Edit(text)
	w.keepCursorInDocument()
	w.RefreshTitle()
}

func (w *Window) Save() error {
	defer w.RefreshTitle()
	return w.document.Save()
}

func (w *Window) SaveAs() error {
	defer w.RefreshTitle()
	return w.document.SaveAs()
}

func (w *Window) SaveTo(path string) error {
	defer w.RefreshTitle()
	return w.document.SaveTo(path)
}

func (w *Window) LoadFrom(path string) error {
	defer w.RefreshTitle()
	if err := w.document.LoadFrom(path); err != nil {
		return err
	}
	w.cursor = types.Point{}
	w.offset = types.Size{}
	w.undo = nil
	w.breakUndo()
	return nil
}

// These primitives edit the document at the cursor.

func (w *Window) InsertChar(c rune) {
	w.record(editInsert)
	d := w.document
	if c == '\n' {
		d.SplitRow(w.cursor.Row, w.cursor.Col)
		w.cursor.Row++
		w.cursor.Col = 0
	} else {
		d.InsertCharacter(w.cursor.Row, w.cursor.Col, c)
		w.cursor.Col++
	}
	w.RefreshTitle()
}

func (w *Window) InsertText(text string) {
	for _, c := range text {
		w.InsertChar(c)
	}
}

// BackspaceChar deletes the character before the cursor,
// joining the current row to the previous one at the start of a row.
func (w *Window) BackspaceChar() rune {
	d := w.document
	var c rune
	if w.cursor.Col > 0 || w.cursor.Row > 0 {
		w.record(editDelete)
	}
	if w.cursor.Col > 0 {
		c = d.DeleteCharacter(w.cursor.Row, w.cursor.Col-1)
		w.cursor.Col--
	} else if w.cursor.Row > 0 {
		col := d.GetRowLength(w.cursor.Row - 1)
		d.JoinRow(w.cursor.Row - 1)
		w.cursor.Row--
		w.cursor.Col = col
		c = '\n'
	}
	w.RefreshTitle()
	return c
}

// DeleteChar deletes the character under the cursor.
func (w *Window) DeleteChar() rune {
	d := w.document
	var c rune
	if w.cursor.Col < d.GetRowLength(w.cursor.Row) || w.cursor.Row < d.GetRowCount()-1 {
		w.record(editDelete)
	}
	if w.cursor.Col < d.GetRowLength(w.cursor.Row) {
		c = d.DeleteCharacter(w.cursor.Row, w.cursor.Col)
	} else if w.cursor.Row < d.GetRowCount()-1 {
		d.JoinRow(w.cursor.Row)
		c = '\n'
	}
	w.RefreshTitle()
	return c
}

func (w *Window) MoveCursor(direction int, multiplier int) {
	w.breakUndo()
	for i := 0; i < multiplier; i++ {
		switch direction {
		case types.MoveLeft:
			if w.cursor.Col > 0 {
				w.cursor.Col--
			} else if w.cursor.Row > 0 {
				w.cursor.Row--
				w.cursor.Col = w.document.GetRowLength(w.cursor.Row)
			}
		case types.MoveRight:
			if w.cursor.Col < w.document.GetRowLength(w.cursor.Row) {
				w.cursor.Col++
			} else if w.cursor.Row < w.document.GetRowCount()-1 {
				w.cursor.Row++
				w.cursor.Col = 0
			}
		case types.MoveUp:
			if w.cursor.Row > 0 {
				w.cursor.Row--
			}
		case types.MoveDown:
			if w.cursor.Row < w.document.GetRowCount()-1 {
				w.cursor.Row++
			}
		}
	}
	w.keepCursorInDocument()
}

func (w *Window) MoveToBeginningOfLine() {
	w.breakUndo()
	w.cursor.Col = 0
}

func (w *Window) MoveToEndOfLine() {
	w.breakUndo()
	w.cursor.Col = w.document.GetRowLength(w.cursor.Row)
}

func (w *Window) PageUp() {
	w.MoveCursor(types.MoveUp, max(w.size.Rows, 1))
}

func (w *Window) PageDown() {
	w.MoveCursor(types.MoveDown, max(w.size.Rows, 1))
}

func (w *Window) keepCursorInDocument() {
	d := w.document
	w.cursor.Row = clipToRange(w.cursor.Row, 0, d.GetRowCount()-1)
	w.cursor.Col = clipToRange(w.cursor.Col, 0, d.GetRowLength(w.cursor.Row))
}

func clipToRange(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// displayColumn returns the screen column of col in text, expanding tabs.
func (w *Window) displayColumn(text []rune, col int) int {
	x := 0
	for i, c := range text {
		if i >= col {
			break
		}
		x += w.cellWidth(c, x)
	}
	return x
}

func (w *Window) cellWidth(c rune, x int) int {
	if c == '\t' {
		return w.tabWidth - x%w.tabWidth
	}
	if width := runewidth.RuneWidth(c); width > 0 {
		return width
	}
	return 1
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) adjustDisplayOffsetForScrolling() {
	if w.cursor.Row < w.offset.Rows {
		w.offset.Rows = w.cursor.Row
	}
	if w.cursor.Row-w.offset.Rows >= w.size.Rows {
		w.offset.Rows = w.cursor.Row - w.size.Rows + 1
	}
	col := w.displayColumn(w.document.rows[w.cursor.Row].Text, w.cursor.Col)
	if col < w.offset.Cols {
		w.offset.Cols = col
	}
	if col-w.offset.Cols >= w.size.Cols {
		w.offset.Cols = col - w.size.Cols + 1
	}
}

// Render draws the visible part of the document on the note's accent color.
func (w *Window) Render(display types.Display, r types.Rect) {
	w.size = r.Size
	w.keepCursorInDocument()
	w.adjustDisplayOffsetForScrolling()

	for i := 0; i < r.Size.Rows; i++ {
		for j := 0; j < r.Size.Cols; j++ {
			display.SetCell(r.Origin.Col+j, r.Origin.Row+i, ' ', types.ColorBlack, w.accent)
		}
		index := i + w.offset.Rows
		if index >= w.document.GetRowCount() {
			continue
		}
		x := 0
		for _, c := range w.document.rows[index].Text {
			width := w.cellWidth(c, x)
			col := x - w.offset.Cols
			x += width
			if col < 0 {
				continue
			}
			if col+width > r.Size.Cols {
				break
			}
			if c == '\t' {
				continue
			}
			display.SetCell(r.Origin.Col+col, r.Origin.Row+i, c, types.ColorBlack, w.accent)
		}
	}

	col := w.displayColumn(w.document.rows[w.cursor.Row].Text, w.cursor.Col)
	display.SetCursor(types.Point{
		Row: r.Origin.Row + w.cursor.Row - w.offset.Rows,
		Col: r.Origin.Col + col - w.offset.Cols,
	})
}
