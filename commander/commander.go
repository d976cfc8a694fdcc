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
package commander

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/timburks/rhinote/printer"
	"github.com/timburks/rhinote/types"
)

const Version = "0.8.0"

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor      types.Editor
	prompter    types.Prompter
	logger      *zap.Logger
	batch       bool   // true if commander is running a lisp script
	mode        int    // commander mode
	debug       bool   // debug mode displays information about events (key codes, etc)
	commandText string // command as it is being typed on the command line
	lispText    string // lisp command as it is being typed
	message     string // status message
}

func NewCommander(e types.Editor, p types.Prompter, logger *zap.Logger) *Commander {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Commander{editor: e, prompter: p, logger: logger, mode: types.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetCommand() string {
	return c.commandText
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}

// IsRunning is false once the user quits or the last note closes.
func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit && c.editor.IsRunning()
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case types.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *types.Event) error {
	switch c.mode {
	case types.ModeEdit:
		return c.processKeyEditMode(event)
	case types.ModeCommand:
		return c.processKeyCommandMode(event)
	case types.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

// Notes are modeless: typed characters go into the focused note
// and control keys run note commands.
func (c *Commander) processKeyEditMode(event *types.Event) error {
	e := c.editor
	if event.Ch != 0 {
		e.InsertChar(event.Ch)
		return nil
	}
	switch event.Key {
	case types.KeyEsc:
		c.mode = types.ModeCommand
		c.commandText = ""
	case types.KeyEnter:
		e.InsertChar('\n')
	case types.KeySpace:
		e.InsertChar(' ')
	case types.KeyTab:
		e.InsertChar('\t')
	case types.KeyBackspace2:
		e.BackspaceChar()
	case types.KeyDelete, types.KeyCtrlD:
		e.DeleteChar()
	case types.KeyArrowUp:
		e.MoveCursor(types.MoveUp, 1)
	case types.KeyArrowDown:
		e.MoveCursor(types.MoveDown, 1)
	case types.KeyArrowLeft:
		e.MoveCursor(types.MoveLeft, 1)
	case types.KeyArrowRight:
		e.MoveCursor(types.MoveRight, 1)
	case types.KeyHome:
		e.MoveToBeginningOfLine()
	case types.KeyEnd, types.KeyCtrlE:
		e.MoveToEndOfLine()
	case types.KeyPgup:
		e.PageUp()
	case types.KeyPgdn:
		e.PageDown()
	case types.KeyCtrlN:
		c.PerformCommand("new")
	case types.KeyCtrlO:
		c.PerformCommand("e")
	case types.KeyCtrlS:
		c.PerformCommand("w")
	case types.KeyCtrlA:
		c.PerformCommand("saveas")
	case types.KeyCtrlP:
		c.PerformCommand("print")
	case types.KeyCtrlW:
		c.PerformCommand("q")
	case types.KeyCtrlQ:
		c.PerformCommand("qa")
	case types.KeyCtrlZ:
		c.PerformCommand("u")
	case types.KeyCtrlL:
		e.SelectWindowNext()
	case types.KeyCtrlK:
		e.SelectWindowPrevious()
	case types.KeyCtrlH:
		c.PerformCommand("help")
	case types.KeyCtrl2:
		c.PerformCommand("about")
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *types.Event) error {
	if event.Ch != 0 {
		if event.Ch == '(' && c.commandText == "" {
			c.mode = types.ModeLisp
			c.lispText = "("
			return nil
		}
		c.commandText += string(event.Ch)
		return nil
	}
	switch event.Key {
	case types.KeyEsc:
		c.mode = types.ModeEdit
	case types.KeyEnter:
		command := c.commandText
		c.commandText = ""
		c.mode = types.ModeEdit
		c.PerformCommand(command)
	case types.KeyBackspace2:
		if len(c.commandText) > 0 {
			c.commandText = c.commandText[0 : len(c.commandText)-1]
		} else {
			c.mode = types.ModeEdit
		}
	case types.KeySpace:
		c.commandText += " "
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *types.Event) error {
	if event.Ch != 0 {
		c.lispText += string(event.Ch)
		return nil
	}
	switch event.Key {
	case types.KeyEsc:
		c.mode = types.ModeEdit
	case types.KeyEnter:
		c.mode = types.ModeEdit
		c.message = c.ParseEval(c.lispText)
	case types.KeyBackspace2:
		if len(c.lispText) > 0 {
			c.lispText = c.lispText[0 : len(c.lispText)-1]
		}
	case types.KeySpace:
		c.lispText += " "
	}
	return nil
}

// PerformCommand runs one command line.
func (c *Commander) PerformCommand(command string) {
	e := c.editor
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return
	}
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(command), parts[0]))
	c.message = ""
	switch parts[0] {
	case "new", "n":
		w := e.NewNote()
		c.message = fmt.Sprintf("note [%d]", w.GetNumber())
	case "w":
		if arg != "" {
			c.report("saved", e.SaveTo(arg))
		} else {
			c.report("saved", e.Save())
		}
	case "saveas":
		if arg != "" {
			c.report("saved", e.SaveTo(arg))
		} else {
			c.report("saved", e.SaveAs())
		}
	case "e", "open":
		if arg != "" {
			c.report("opened", e.OpenPath(arg))
		} else {
			c.report("opened", e.Open())
		}
	case "print":
		c.report("printed", e.Print())
	case "u", "undo":
		if !e.Undo() {
			c.message = "nothing to undo"
		}
	case "q", "close":
		if err := e.CloseActiveWindow(); err != nil {
			c.message = "close aborted: " + err.Error()
		}
	case "wq":
		if err := e.Save(); err != nil {
			c.report("", err)
			return
		}
		if err := e.CloseActiveWindow(); err != nil {
			c.message = "close aborted: " + err.Error()
		}
	case "qa", "quit":
		if err := e.CloseAll(); err != nil {
			c.message = fmt.Sprintf("%d notes left open", e.WindowCount())
		}
		if !e.IsRunning() {
			c.mode = types.ModeQuit
		}
	case "notes":
		c.prompter.Notify("Notes", e.ListWindows())
	case "note":
		number, err := strconv.Atoi(arg)
		if err == nil {
			err = e.SelectWindow(number)
		}
		if err != nil {
			c.message = err.Error()
		}
	case "help":
		c.prompter.Notify(e.GetAppName()+" Help", helpText(e.GetAppName()))
	case "about":
		c.prompter.Notify("About "+e.GetAppName(), aboutText(e.GetAppName()))
	case "debug":
		switch arg {
		case "on":
			c.debug = true
		case "off":
			c.debug = false
		}
	default:
		c.message = "unknown command: " + parts[0]
	}
	c.logger.Debug("command", zap.String("command", command), zap.String("message", c.message))
}

// report describes the outcome of an action. Cancellation is quiet;
// failures are shown to the user and never stop the editor.
func (c *Commander) report(success string, err error) {
	var printErr *printer.PrintError
	app := c.editor.GetAppName()
	switch {
	case err == nil:
		c.message = success
	case errors.Is(err, types.ErrCancelled):
		c.message = "cancelled"
	case errors.As(err, &printErr):
		c.message = "print failed"
		c.prompter.Notify(app+" print error", err.Error())
	default:
		c.message = err.Error()
		c.prompter.Notify(app+" error", err.Error())
	}
}

func helpText(app string) string {
	return "Editing Commands\n" +
		"Arrows, Home, End, PgUp, PgDn : Move the cursor\n" +
		"Ctrl-d : Delete the character under the cursor\n" +
		"Ctrl-z : Undo\n" +
		"\n" +
		"File Commands\n" +
		"Ctrl-o : Open file\n" +
		"Ctrl-s : Save current note\n" +
		"Ctrl-a : Save current note with new filename\n" +
		"Ctrl-p : Print current note\n" +
		"Ctrl-n : Open new " + app + " note\n" +
		"Ctrl-l / Ctrl-k : Next / previous note\n" +
		"\n" +
		"General\n" +
		"Ctrl-h : Display this help\n" +
		"Ctrl-@ : Display About box\n" +
		"Ctrl-w : Close current note\n" +
		"Ctrl-q : Quit " + app + "\n" +
		"Esc : Command line (w, saveas, e, new, u, q, qa, print, notes, note N, or a lisp expression)"
}

func aboutText(app string) string {
	return app + " version " + Version + "\n" +
		"\n" +
		"Sticky notes for the terminal."
}
