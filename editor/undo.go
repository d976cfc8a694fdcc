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
	"github.com/timburks/rhinote/types"
)

// MaxUndo is the number of edits a window remembers.
const MaxUndo = 100

// Kinds of edit. Consecutive edits of the same kind are undone together.
const (
	editNone = iota
	editInsert
	editDelete
	editReplace
)

// An operation restores the text and cursor from before an edit.
type operation struct {
	text   string
	cursor types.Point
}

// record saves the state before an edit unless it continues the previous one.
func (w *Window) record(kind int) {
	if kind == w.lastEdit && kind != editReplace {
		return
	}
	w.lastEdit = kind
	w.undo = append(w.undo, operation{text: w.document.Text(), cursor: w.cursor})
	if len(w.undo) > MaxUndo {
		w.undo = w.undo[len(w.undo)-MaxUndo:]
	}
}

// breakUndo makes the next edit start a new undo step.
func (w *Window) breakUndo() {
	w.lastEdit = editNone
}

// Undo reverts the most recent edit. It reports false if there is nothing to undo.
func (w *Window) Undo() bool {
	if len(w.undo) == 0 {
		return false
	}
	op := w.undo[len(w.undo)-1]
	w.undo = w.undo[:len(w.undo)-1]
	w.document.Edit(op.text)
	w.cursor = op.cursor
	w.keepCursorInDocument()
	w.breakUndo()
	w.RefreshTitle()
	return true
}
