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

// Package types holds the interfaces and constants shared by the
// editor, the commander, the screen, and the gateways they talk to.
package types

import "errors"

// ErrCancelled is returned when the user dismisses a prompt.
// It is a normal outcome, not a failure.
var ErrCancelled = errors.New("cancelled")

// Commander modes
const (
	ModeEdit    = 0
	ModeCommand = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventUnhandled = 2
)

type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlH
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlW
	KeyCtrlZ
	KeyCtrl2
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Color is an xterm 256-color palette index.
type Color int

const (
	ColorBlack Color = 16
	ColorWhite Color = 231
)

// A Display receives rendered cells.
type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
	SetCursor(p Point)
}

// A Store reads and writes note contents.
// Contents are raw text with no envelope.
type Store interface {
	Read(path string) (string, error)
	Write(path string, text string) error
}

// A Prompter asks the user questions. Every method blocks until the user answers.
// The path prompts return ErrCancelled when the user dismisses them.
type Prompter interface {
	PromptOpenPath() (string, error)
	PromptSavePath() (string, error)
	Confirm(question string) bool
	Notify(title string, message string)
}

// A Printer sends text to a printer.
type Printer interface {
	Print(text string) error
}

// A Window is one note as seen by the commander and the screen.
type Window interface {
	GetNumber() int
	GetTitle() string
	GetAccent() Color
	GetCursor() Point
	IsModified() bool
	Render(d Display, r Rect)
}

// The Editor coordinates all open notes.
type Editor interface {
	GetAppName() string
	GetActiveWindow() Window
	WindowCount() int
	IsRunning() bool

	NewNote() Window
	SelectWindow(number int) error
	SelectWindowNext()
	SelectWindowPrevious()
	ListWindows() string

	CloseActiveWindow() error
	CloseAll() error
	Save() error
	SaveAs() error
	SaveTo(path string) error
	Open() error
	OpenPath(path string) error
	Print() error

	Text() string
	InsertText(text string)
	InsertChar(c rune)
	BackspaceChar() rune
	DeleteChar() rune
	MoveCursor(direction int, multiplier int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()
	Undo() bool
}

type Commander interface {
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
}
