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
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/timburks/rhinote/types"
)

const openQuestion = "Existing note has not been saved. Do you wish to save before opening another file?"

// The Editor routes user actions to the focused window and owns the registry of open windows.
// There is typically only one editor in a rhinote instance.
type Editor struct {
	appName       string
	registry      *Registry
	focusedWindow *Window // window with cursor focus
	prompter      types.Prompter
	printer       types.Printer
	logger        *zap.Logger
}

// NewEditor returns an editor with no open notes.
func NewEditor(opts Options) *Editor {
	opts.setDefaults()
	return &Editor{
		appName:  opts.AppName,
		registry: NewRegistry(opts),
		prompter: opts.Prompter,
		printer:  opts.Printer,
		logger:   opts.Logger,
	}
}

func (e *Editor) GetAppName() string {
	return e.appName
}

func (e *Editor) GetRegistry() *Registry {
	return e.registry
}

// ActiveWindow returns the focused window or nil.
func (e *Editor) ActiveWindow() *Window {
	return e.focusedWindow
}

func (e *Editor) GetActiveWindow() types.Window {
	if e.focusedWindow == nil {
		return nil
	}
	return e.focusedWindow
}

func (e *Editor) WindowCount() int {
	return e.registry.Len()
}

// IsRunning reports whether any note is still open.
func (e *Editor) IsRunning() bool {
	return e.registry.Len() > 0
}

// NewNote opens a new empty note and gives it focus.
func (e *Editor) NewNote() types.Window {
	e.focusedWindow = e.registry.Create()
	return e.focusedWindow
}

func (e *Editor) SelectWindow(number int) error {
	w := e.registry.Find(number)
	if w == nil {
		return fmt.Errorf("no note exists for identifier %d", number)
	}
	e.focusedWindow = w
	return nil
}

func (e *Editor) SelectWindowNext() {
	e.selectRelative(1)
}

func (e *Editor) SelectWindowPrevious() {
	e.selectRelative(-1)
}

func (e *Editor) selectRelative(step int) {
	windows := e.registry.Windows()
	if len(windows) == 0 {
		return
	}
	i := e.registry.IndexOf(e.focusedWindow)
	if i < 0 {
		e.focusedWindow = windows[len(windows)-1]
		return
	}
	e.focusedWindow = windows[(i+step+len(windows))%len(windows)]
}

// ListWindows describes the open notes, one per line, in creation order.
func (e *Editor) ListWindows() string {
	lines := make([]string, 0, e.registry.Len())
	for _, w := range e.registry.Windows() {
		marker := " "
		if w == e.focusedWindow {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s[%d] %s", marker, w.GetNumber(), w.GetTitle()))
	}
	return strings.Join(lines, "\n")
}

// refocus moves focus to the newest window if the focused one has closed.
func (e *Editor) refocus() {
	if e.focusedWindow == nil || e.focusedWindow.GetState() == StateClosed {
		e.focusedWindow = e.registry.Last()
	}
}

// CloseActiveWindow runs the close protocol on the focused window.
func (e *Editor) CloseActiveWindow() error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	err := w.RequestClose()
	e.refocus()
	return err
}

// CloseAll closes every window it can, newest first.
// Windows whose close was aborted stay open and keep the editor running.
func (e *Editor) CloseAll() error {
	err := e.registry.CloseAll()
	e.refocus()
	return err
}

func (e *Editor) Save() error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	return e.logged("save", w, w.Save())
}

func (e *Editor) SaveAs() error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	return e.logged("save as", w, w.SaveAs())
}

func (e *Editor) SaveTo(path string) error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	return e.logged("save to", w, w.SaveTo(path))
}

// Open asks for a file and loads it into the focused window.
// If the window has unsaved changes the user is first offered a save,
// but the open goes ahead whatever the answer or the outcome of that save.
func (e *Editor) Open() error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	e.offerSaveBeforeOpen(w)
	path, err := e.prompter.PromptOpenPath()
	if err != nil {
		return err
	}
	if path == "" {
		return ErrCancelled
	}
	return e.logged("open", w, w.LoadFrom(path))
}

// OpenPath loads a named file into the focused window.
func (e *Editor) OpenPath(path string) error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	e.offerSaveBeforeOpen(w)
	return e.logged("open", w, w.LoadFrom(path))
}

func (e *Editor) offerSaveBeforeOpen(w *Window) {
	if !w.IsModified() || !e.prompter.Confirm(openQuestion) {
		return
	}
	err := w.Save()
	if err != nil && !errors.Is(err, ErrCancelled) {
		e.prompter.Notify(e.appName+" save error", err.Error())
	}
	e.logged("save before open", w, err)
}

// Print sends the text of the focused window to the printer.
func (e *Editor) Print() error {
	w := e.focusedWindow
	if w == nil {
		return ErrNoWindow
	}
	if e.printer == nil {
		return ErrNoPrinter
	}
	return e.logged("print", w, e.printer.Print(w.GetDocument().Text()))
}

func (e *Editor) logged(action string, w *Window, err error) error {
	switch {
	case err == nil:
		e.logger.Info(action, zap.Int("window", w.GetNumber()), zap.String("path", w.GetDocument().GetPath()))
	case errors.Is(err, ErrCancelled):
		e.logger.Debug(action+" cancelled", zap.Int("window", w.GetNumber()))
	default:
		e.logger.Error(action+" failed", zap.Int("window", w.GetNumber()), zap.Error(err))
	}
	return err
}

// These editing primitives act on the focused window.

func (e *Editor) Text() string {
	if e.focusedWindow == nil {
		return ""
	}
	return e.focusedWindow.GetDocument().Text()
}

func (e *Editor) InsertText(text string) {
	if e.focusedWindow != nil {
		e.focusedWindow.InsertText(text)
	}
}

func (e *Editor) InsertChar(c rune) {
	if e.focusedWindow != nil {
		e.focusedWindow.InsertChar(c)
	}
}

func (e *Editor) BackspaceChar() rune {
	if e.focusedWindow == nil {
		return rune(0)
	}
	return e.focusedWindow.BackspaceChar()
}

func (e *Editor) DeleteChar() rune {
	if e.focusedWindow == nil {
		return rune(0)
	}
	return e.focusedWindow.DeleteChar()
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	if e.focusedWindow != nil {
		e.focusedWindow.MoveCursor(direction, multiplier)
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	if e.focusedWindow != nil {
		e.focusedWindow.MoveToBeginningOfLine()
	}
}

func (e *Editor) MoveToEndOfLine() {
	if e.focusedWindow != nil {
		e.focusedWindow.MoveToEndOfLine()
	}
}

func (e *Editor) PageUp() {
	if e.focusedWindow != nil {
		e.focusedWindow.PageUp()
	}
}

func (e *Editor) PageDown() {
	if e.focusedWindow != nil {
		e.focusedWindow.PageDown()
	}
}

func (e *Editor) Undo() bool {
	if e.focusedWindow == nil {
		return false
	}
	return e.focusedWindow.Undo()
}

var (
	_ types.Editor = (*Editor)(nil)
	_ types.Window = (*Window)(nil)
)
