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
package screen

import (
	"fmt"
	"strings"

	"github.com/nsf/termbox-go"

	"github.com/timburks/rhinote/storage"
	"github.com/timburks/rhinote/types"
)

// Prompts are modal: each one runs its own event loop on the calling
// goroutine and returns only after the user answers.

func (s *Screen) PromptOpenPath() (string, error) {
	return s.promptPath("Open")
}

func (s *Screen) PromptSavePath() (string, error) {
	return s.promptPath("Save as")
}

// promptPath reads a path on the message bar.
// Tab completes against the current filter and Ctrl-F switches filters.
func (s *Screen) promptPath(label string) (string, error) {
	var text, hint string
	for {
		filter := storage.Filters[s.filter]
		s.drawPrompt(fmt.Sprintf("%s [%s]: %s", label, filter, text), hint)
		hint = ""
		event := s.GetNextEvent()
		if event.Type != types.EventKey {
			continue
		}
		if event.Ch != 0 {
			text += string(event.Ch)
			continue
		}
		switch event.Key {
		case types.KeyEsc, types.KeyCtrlC:
			return "", types.ErrCancelled
		case types.KeyEnter:
			if strings.TrimSpace(text) == "" {
				return "", types.ErrCancelled
			}
			return storage.ExpandHome(text), nil
		case types.KeyBackspace2:
			if len(text) > 0 {
				r := []rune(text)
				text = string(r[:len(r)-1])
			}
		case types.KeySpace:
			text += " "
		case types.KeyCtrlF:
			s.filter = (s.filter + 1) % len(storage.Filters)
		case types.KeyTab:
			candidates, err := storage.Complete(text, filter)
			switch {
			case err != nil:
				hint = err.Error()
			case len(candidates) == 0:
				hint = "no match"
			case len(candidates) == 1:
				text = candidates[0]
			default:
				text = storage.CommonPrefix(candidates)
				hint = fmt.Sprintf("%d matches", len(candidates))
			}
		}
	}
}

// Confirm asks a yes/no question. Anything but y dismisses it as no.
func (s *Screen) Confirm(question string) bool {
	for {
		s.drawPrompt(question+" (y/n)", "")
		event := s.GetNextEvent()
		if event.Type != types.EventKey {
			continue
		}
		switch event.Ch {
		case 'y', 'Y':
			return true
		case 'n', 'N':
			return false
		}
		if event.Key == types.KeyEsc || event.Key == types.KeyCtrlC {
			return false
		}
	}
}

// Notify shows a message over the note until a key is pressed.
func (s *Screen) Notify(title string, message string) {
	lines := []string{title, ""}
	lines = append(lines, strings.Split(message, "\n")...)
	lines = append(lines, "", "(press any key)")
	for {
		s.redraw()
		width := 0
		for _, line := range lines {
			width = max(width, len([]rune(line)))
		}
		for i, line := range lines {
			row := i + 1
			if row >= s.size.Rows-2 {
				break
			}
			for x := 1; x < width+3 && x < s.size.Cols; x++ {
				s.SetCell(x, row, ' ', types.ColorBlack, types.ColorWhite)
			}
			s.drawText(2, row, line, types.ColorBlack, types.ColorWhite)
		}
		termbox.HideCursor()
		termbox.Flush()
		if event := s.GetNextEvent(); event.Type == types.EventKey {
			return
		}
	}
}

// drawPrompt draws the last rendered editor with a prompt on the message bar.
func (s *Screen) drawPrompt(line string, hint string) {
	s.redraw()
	s.fillLine(s.size.Rows-1, types.ColorWhite, types.ColorBlack)
	x := s.drawText(0, s.size.Rows-1, line, types.ColorWhite, types.ColorBlack)
	termbox.SetCursor(x, s.size.Rows-1)
	if hint != "" {
		s.drawText(x+2, s.size.Rows-1, "("+hint+")", types.ColorWhite, types.ColorBlack)
	}
	termbox.Flush()
}

func (s *Screen) redraw() {
	if s.editor != nil && s.commander != nil {
		s.draw(s.editor, s.commander)
		return
	}
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
}

var _ types.Prompter = (*Screen)(nil)
var _ types.Display = (*Screen)(nil)
