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
	"os"

	"github.com/steelseries/golisp"
	"go.uber.org/zap"

	"github.com/timburks/rhinote/types"
)

// golisp primitives are global, so they act on the commander that is evaluating.
var current *Commander

func init() {
	golisp.MakePrimitiveFunction("new-note", "0", newNoteImpl)
	golisp.MakePrimitiveFunction("close-note", "0", closeNoteImpl)
	golisp.MakePrimitiveFunction("close-all", "0", closeAllImpl)
	golisp.MakePrimitiveFunction("save", "0", saveImpl)
	golisp.MakePrimitiveFunction("save-as", "1", saveAsImpl)
	golisp.MakePrimitiveFunction("open", "1", openImpl)
	golisp.MakePrimitiveFunction("print-note", "0", printImpl)
	golisp.MakePrimitiveFunction("insert", "1", insertImpl)
	golisp.MakePrimitiveFunction("undo", "0", undoImpl)
	golisp.MakePrimitiveFunction("note-text", "0", noteTextImpl)
	golisp.MakePrimitiveFunction("note-count", "0", noteCountImpl)
	golisp.MakePrimitiveFunction("note-title", "0", noteTitleImpl)
	golisp.MakePrimitiveFunction("select-note", "1", selectNoteImpl)
}

// ParseEval evaluates one lisp expression and describes its value.
func (c *Commander) ParseEval(source string) string {
	current = c
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		c.logger.Warn("lisp error", zap.String("source", source), zap.Error(err))
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	current = c
	c.batch = true
	defer func() { c.batch = false }()
	value, err := golisp.ParseAndEval("(begin " + string(b) + "\n)")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Info("script finished", zap.String("path", path), zap.String("value", golisp.String(value)))
	return nil
}

func stringArg(args *golisp.Data, name string) (string, error) {
	arg := golisp.Car(args)
	if !golisp.StringP(arg) {
		return "", errors.New(name + " requires a string argument")
	}
	return golisp.StringValue(arg), nil
}

// outcome turns an editor result into a lisp value: true on success,
// false when the user cancelled, and a lisp error otherwise.
func outcome(err error) (*golisp.Data, error) {
	switch {
	case err == nil:
		return golisp.BooleanWithValue(true), nil
	case errors.Is(err, types.ErrCancelled):
		return golisp.BooleanWithValue(false), nil
	default:
		return nil, err
	}
}

func newNoteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	w := current.editor.NewNote()
	return golisp.IntegerWithValue(int64(w.GetNumber())), nil
}

// close-note and close-all report whether everything asked for was closed.
func closeNoteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	err := current.editor.CloseActiveWindow()
	return golisp.BooleanWithValue(err == nil), nil
}

func closeAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	err := current.editor.CloseAll()
	if !current.editor.IsRunning() {
		current.mode = types.ModeQuit
	}
	return golisp.BooleanWithValue(err == nil), nil
}

func saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return outcome(current.editor.Save())
}

func saveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArg(args, "save-as")
	if err != nil {
		return nil, err
	}
	return outcome(current.editor.SaveTo(path))
}

func openImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArg(args, "open")
	if err != nil {
		return nil, err
	}
	return outcome(current.editor.OpenPath(path))
}

func printImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return outcome(current.editor.Print())
}

func insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArg(args, "insert")
	if err != nil {
		return nil, err
	}
	current.editor.InsertText(text)
	return golisp.StringWithValue(current.editor.Text()), nil
}

func undoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(current.editor.Undo()), nil
}

func noteTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(current.editor.Text()), nil
}

func noteCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(current.editor.WindowCount())), nil
}

func noteTitleImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	w := current.editor.GetActiveWindow()
	if w == nil {
		return golisp.StringWithValue(""), nil
	}
	return golisp.StringWithValue(w.GetTitle()), nil
}

func selectNoteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	arg := golisp.Car(args)
	if !golisp.IntegerP(arg) {
		return nil, errors.New("select-note requires an integer argument")
	}
	return outcome(current.editor.SelectWindow(int(golisp.IntegerValue(arg))))
}
