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

	"github.com/timburks/rhinote/types"
)

// A Document is the text of one note and its save state.
//
// The bound path is set only by a successful save or load. The snapshot
// is the exact text of the last save or load; a document is modified when
// its text differs from the snapshot. That comparison is made every time
// IsModified is called instead of tracking a dirty bit through edits.
type Document struct {
	rows     []*Row
	path     string // bound path, empty until the first save or load
	snapshot string // text as of the last successful save or load
	store    types.Store
	prompter types.Prompter
}

func NewDocument(store types.Store, prompter types.Prompter) *Document {
	d := &Document{store: store, prompter: prompter}
	d.setText("")
	return d
}

func (d *Document) setText(text string) {
	lines := strings.Split(text, "\n")
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(line))
	}
}

// Text returns the current contents of the buffer.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row.Text))
	}
	return sb.String()
}

// Edit replaces the contents of the buffer.
func (d *Document) Edit(text string) {
	d.setText(text)
}

func (d *Document) IsModified() bool {
	return d.Text() != d.snapshot
}

func (d *Document) GetPath() string {
	return d.path
}

func (d *Document) GetSnapshot() string {
	return d.snapshot
}

// LoadFrom replaces the buffer with the contents of a file and binds the document to it.
func (d *Document) LoadFrom(path string) error {
	text, err := d.store.Read(path)
	if err != nil {
		return &IOError{Op: "read", Path: path, Err: err}
	}
	d.setText(text)
	d.snapshot = text
	d.path = path
	return nil
}

// SaveTo writes the buffer to a file and binds the document to it.
// Nothing changes if the write fails.
func (d *Document) SaveTo(path string) error {
	text := d.Text()
	if err := d.store.Write(path, text); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	d.path = path
	d.snapshot = text
	return nil
}

// Save writes to the bound path, or asks for one if there is none yet.
func (d *Document) Save() error {
	if d.path == "" {
		return d.SaveAs()
	}
	return d.SaveTo(d.path)
}

// SaveAs asks for a path and writes to it.
func (d *Document) SaveAs() error {
	path, err := d.prompter.PromptSavePath()
	if err != nil {
		return err
	}
	if path == "" {
		return ErrCancelled
	}
	return d.SaveTo(path)
}

func (d *Document) GetRowCount() int {
	return len(d.rows)
}

func (d *Document) GetRowLength(i int) int {
	if i < len(d.rows) {
		return d.rows[i].Length()
	}
	return 0
}

func (d *Document) TextAfter(row, col int) string {
	if row < len(d.rows) {
		return d.rows[row].TextAfter(col)
	}
	return ""
}

func (d *Document) InsertCharacter(row, col int, c rune) {
	if row < len(d.rows) {
		d.rows[row].InsertChar(col, c)
	}
}

// SplitRow breaks a row in two at col.
func (d *Document) SplitRow(row, col int) {
	if row >= len(d.rows) {
		return
	}
	newRow := d.rows[row].Split(col)
	d.rows = append(d.rows, nil)
	copy(d.rows[row+2:], d.rows[row+1:])
	d.rows[row+1] = newRow
}

// JoinRow appends the following row to row and removes it.
func (d *Document) JoinRow(row int) {
	if row+1 >= len(d.rows) {
		return
	}
	d.rows[row].Join(d.rows[row+1])
	d.rows = append(d.rows[0:row+1], d.rows[row+2:]...)
}

func (d *Document) DeleteCharacter(row, col int) rune {
	if row < len(d.rows) && col < d.rows[row].Length() {
		return d.rows[row].DeleteChar(col)
	}
	return rune(0)
}
