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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timburks/rhinote/types"
)

// gridDisplay records rendered cells.
type gridDisplay struct {
	cells  map[types.Point]rune
	bg     map[types.Point]types.Color
	cursor types.Point
}

func newGridDisplay() *gridDisplay {
	return &gridDisplay{cells: make(map[types.Point]rune), bg: make(map[types.Point]types.Color)}
}

func (d *gridDisplay) SetCell(col int, row int, c rune, fg types.Color, bg types.Color) {
	p := types.Point{Row: row, Col: col}
	d.cells[p] = c
	d.bg[p] = bg
}

func (d *gridDisplay) SetCursor(p types.Point) {
	d.cursor = p
}

func (d *gridDisplay) line(row int, cols int) string {
	line := make([]rune, cols)
	for col := 0; col < cols; col++ {
		line[col] = d.cells[types.Point{Row: row, Col: col}]
	}
	return string(line)
}

func newTestWindow() *Window {
	e, _, _, _ := newTestEditor()
	return e.NewNote().(*Window)
}

func TestTypingAndNewlines(t *testing.T) {
	w := newTestWindow()
	w.InsertText("hello\nworld")
	require.Equal(t, "hello\nworld", w.GetDocument().Text())
	require.Equal(t, types.Point{Row: 1, Col: 5}, w.GetCursor())
	require.True(t, w.IsModified())
	require.Equal(t, "Rhinote *", w.GetTitle())
}

func TestBackspaceJoinsLines(t *testing.T) {
	w := newTestWindow()
	w.InsertText("ab\ncd")
	w.MoveToBeginningOfLine()
	require.Equal(t, '\n', w.BackspaceChar())
	require.Equal(t, "abcd", w.GetDocument().Text())
	require.Equal(t, types.Point{Row: 0, Col: 2}, w.GetCursor())
	require.Equal(t, 'b', w.BackspaceChar())
	require.Equal(t, "acd", w.GetDocument().Text())

	w.MoveToBeginningOfLine()
	require.Equal(t, rune(0), w.BackspaceChar())
}

func TestDeleteJoinsLines(t *testing.T) {
	w := newTestWindow()
	w.InsertText("ab\ncd")
	w.MoveCursor(types.MoveUp, 1)
	w.MoveToEndOfLine()
	require.Equal(t, '\n', w.DeleteChar())
	require.Equal(t, "abcd", w.GetDocument().Text())
	w.MoveToEndOfLine()
	require.Equal(t, rune(0), w.DeleteChar())
}

func TestMoveCursorWraps(t *testing.T) {
	w := newTestWindow()
	w.InsertText("ab\ncd")
	w.MoveToBeginningOfLine()
	w.MoveCursor(types.MoveLeft, 1)
	require.Equal(t, types.Point{Row: 0, Col: 2}, w.GetCursor())
	w.MoveCursor(types.MoveRight, 1)
	require.Equal(t, types.Point{Row: 1, Col: 0}, w.GetCursor())
	w.MoveCursor(types.MoveDown, 10)
	require.Equal(t, types.Point{Row: 1, Col: 0}, w.GetCursor())
}

func TestUndo(t *testing.T) {
	w := newTestWindow()
	require.False(t, w.Undo())

	w.InsertText("hello")
	w.MoveCursor(types.MoveLeft, 5)
	w.InsertText("oh ")
	require.Equal(t, "oh hello", w.GetDocument().Text())

	require.True(t, w.Undo())
	require.Equal(t, "hello", w.GetDocument().Text())
	require.Equal(t, types.Point{Row: 0, Col: 0}, w.GetCursor())

	require.True(t, w.Undo())
	require.Equal(t, "", w.GetDocument().Text())
	require.False(t, w.IsModified())
	require.Equal(t, "Rhinote", w.GetTitle())
	require.False(t, w.Undo())
}

func TestUndoSeparatesInsertAndDelete(t *testing.T) {
	w := newTestWindow()
	w.InsertText("abc")
	w.BackspaceChar()
	w.BackspaceChar()
	require.Equal(t, "a", w.GetDocument().Text())
	require.True(t, w.Undo())
	require.Equal(t, "abc", w.GetDocument().Text())
	require.True(t, w.Undo())
	require.Equal(t, "", w.GetDocument().Text())
}

func TestUndoIsForgottenOnLoad(t *testing.T) {
	e, store, _, _ := newTestEditor()
	store.files["/notes/a.txt"] = "loaded"
	w := e.NewNote().(*Window)
	w.InsertText("typed")
	require.NoError(t, w.LoadFrom("/notes/a.txt"))
	require.False(t, w.Undo())
	require.Equal(t, "loaded", w.GetDocument().Text())
}

func TestRenderFillsAccent(t *testing.T) {
	w := newTestWindow()
	w.InsertText("hi\n\tx")
	d := newGridDisplay()
	w.Render(d, types.Rect{Size: types.Size{Rows: 3, Cols: 12}})
	require.Equal(t, "hi", d.line(0, 2))
	require.Equal(t, 'x', d.cells[types.Point{Row: 1, Col: 8}])
	require.Equal(t, w.GetAccent(), d.bg[types.Point{Row: 2, Col: 11}])
	require.Equal(t, types.Point{Row: 1, Col: 9}, d.cursor)
}

func TestRenderScrollsToCursor(t *testing.T) {
	w := newTestWindow()
	w.InsertText("one\ntwo\nthree\nfour")
	d := newGridDisplay()
	w.Render(d, types.Rect{Size: types.Size{Rows: 2, Cols: 10}})
	require.Equal(t, "thre", d.line(0, 4))
	require.Equal(t, "four", d.line(1, 4))
	require.Equal(t, types.Point{Row: 1, Col: 4}, d.cursor)
}
