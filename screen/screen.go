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

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/rhinote/types"
)

// The Screen draws the focused note of an Editor and asks the user questions.
type Screen struct {
	size      types.Size // screen size
	editor    types.Editor
	commander types.Commander
	filter    int // index of the file filter offered by path prompts
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// attr converts an xterm color index to a termbox 256-color attribute.
func attr(c types.Color) termbox.Attribute {
	return termbox.Attribute(c) + 1
}

func (s *Screen) SetCell(col int, row int, c rune, fg types.Color, bg types.Color) {
	termbox.SetCell(col, row, c, attr(fg), attr(bg))
}

func (s *Screen) SetCursor(p types.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) Render(e types.Editor, c types.Commander) {
	s.draw(e, c)
	termbox.Flush()
}

func (s *Screen) draw(e types.Editor, c types.Commander) {
	s.editor = e
	s.commander = c
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()

	w := e.GetActiveWindow()
	if w != nil {
		w.Render(s, types.Rect{
			Origin: types.Point{Row: 0, Col: 0},
			Size:   types.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols},
		})
	} else {
		termbox.HideCursor()
	}
	s.renderInfoBar(e)
	s.renderMessageBar(c)
}

func (s *Screen) renderInfoBar(e types.Editor) {
	var text, finalText string
	if w := e.GetActiveWindow(); w != nil {
		text = fmt.Sprintf(" [%d] %s", w.GetNumber(), w.GetTitle())
		finalText = fmt.Sprintf(" %d:%d  %d open ", w.GetCursor().Row+1, w.GetCursor().Col+1, e.WindowCount())
	} else {
		text = " " + e.GetAppName()
	}
	s.fillLine(s.size.Rows-2, types.ColorBlack, types.ColorWhite)
	s.drawText(0, s.size.Rows-2, text, types.ColorBlack, types.ColorWhite)
	s.drawText(s.size.Cols-runewidth.StringWidth(finalText), s.size.Rows-2, finalText, types.ColorBlack, types.ColorWhite)
}

func (s *Screen) renderMessageBar(c types.Commander) {
	var line string
	switch c.GetMode() {
	case types.ModeCommand:
		line = ":" + c.GetCommand()
	case types.ModeLisp:
		line = c.GetLispText()
	default:
		line = c.GetMessage()
	}
	s.drawText(0, s.size.Rows-1, line, types.ColorWhite, types.ColorBlack)
}

func (s *Screen) fillLine(row int, fg, bg types.Color) {
	for x := 0; x < s.size.Cols; x++ {
		s.SetCell(x, row, ' ', fg, bg)
	}
}

// drawText draws text starting at col and returns the column after it.
func (s *Screen) drawText(col int, row int, text string, fg, bg types.Color) int {
	for _, ch := range text {
		if col >= s.size.Cols {
			break
		}
		if col >= 0 {
			s.SetCell(col, row, ch, fg, bg)
		}
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

// GetNextEvent waits for the next terminal event.
func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return &types.Event{Type: types.EventKey, Ch: event.Ch}
		}
		return &types.Event{Type: types.EventKey, Key: key(event.Key)}
	case termbox.EventResize:
		termbox.Flush()
		return &types.Event{Type: types.EventResize}
	default:
		return &types.Event{Type: types.EventUnhandled}
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyCtrlA:
		return types.KeyCtrlA
	case termbox.KeyCtrlB:
		return types.KeyCtrlB
	case termbox.KeyCtrlC:
		return types.KeyCtrlC
	case termbox.KeyCtrlD:
		return types.KeyCtrlD
	case termbox.KeyCtrlE:
		return types.KeyCtrlE
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyCtrlH:
		return types.KeyCtrlH
	case termbox.KeyCtrlK:
		return types.KeyCtrlK
	case termbox.KeyCtrlL:
		return types.KeyCtrlL
	case termbox.KeyCtrlN:
		return types.KeyCtrlN
	case termbox.KeyCtrlO:
		return types.KeyCtrlO
	case termbox.KeyCtrlP:
		return types.KeyCtrlP
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyCtrlW:
		return types.KeyCtrlW
	case termbox.KeyCtrlZ:
		return types.KeyCtrlZ
	case termbox.KeyCtrl2:
		return types.KeyCtrl2
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
