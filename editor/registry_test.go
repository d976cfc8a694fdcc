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
	"go.uber.org/multierr"

	"github.com/timburks/rhinote/types"
)

func TestCloseAllKeepsAbortedWindow(t *testing.T) {
	e, store, prompter, _ := newTestEditor()
	first := e.NewNote().(*Window)
	second := e.NewNote().(*Window)
	third := e.NewNote().(*Window)

	// first and third are bound to files; second has never been saved.
	require.NoError(t, first.SaveTo("/notes/first.txt"))
	require.NoError(t, third.SaveTo("/notes/third.txt"))
	first.Edit("first edit")
	second.Edit("second edit")
	third.Edit("third edit")

	// Every window asks to save; second has no path and the path prompt is dismissed.
	prompter.answers = []bool{true, true, true}
	err := e.CloseAll()
	require.ErrorIs(t, err, types.ErrCancelled)
	require.Len(t, multierr.Errors(err), 1)

	require.Equal(t, 1, e.GetRegistry().Len())
	require.Equal(t, []*Window{second}, e.GetRegistry().Windows())
	require.Equal(t, StateClosed, first.GetState())
	require.Equal(t, StateClosed, third.GetState())
	require.Equal(t, StateOpen, second.GetState())
	require.Equal(t, "first edit", store.files["/notes/first.txt"])
	require.Equal(t, "third edit", store.files["/notes/third.txt"])

	require.True(t, e.IsRunning())
	require.Equal(t, second, e.ActiveWindow())
}

func TestCloseAllRunsNewestFirst(t *testing.T) {
	e, store, prompter, _ := newTestEditor()
	for _, name := range []string{"a", "b", "c"} {
		w := e.NewNote().(*Window)
		require.NoError(t, w.SaveTo("/notes/"+name))
		w.Edit(name + " changed")
	}
	store.writes = nil
	prompter.answers = []bool{true, true, true}
	require.NoError(t, e.CloseAll())
	require.Equal(t, []string{"/notes/c", "/notes/b", "/notes/a"}, store.writes)
	require.False(t, e.IsRunning())
	require.Nil(t, e.GetActiveWindow())
}

func TestCloseAllButLast(t *testing.T) {
	e, _, _, _ := newTestEditor()
	const n = 5
	windows := make([]*Window, 0, n)
	for i := 0; i < n; i++ {
		windows = append(windows, e.NewNote().(*Window))
	}
	for _, w := range windows[:n-1] {
		require.NoError(t, w.RequestClose())
	}
	require.Equal(t, 1, e.GetRegistry().Len())
	require.Equal(t, windows[n-1], e.GetRegistry().Windows()[0])
}

func TestWindowNumbersAreNotReused(t *testing.T) {
	e, _, _, _ := newTestEditor()
	first := e.NewNote()
	second := e.NewNote()
	require.Equal(t, 0, first.GetNumber())
	require.Equal(t, 1, second.GetNumber())
	require.NoError(t, e.CloseActiveWindow())
	third := e.NewNote()
	require.Equal(t, 2, third.GetNumber())
	require.Nil(t, e.GetRegistry().Find(1))
	require.Equal(t, third, e.GetRegistry().Find(2))
}

func TestAccentFollowsRegistrySize(t *testing.T) {
	e, _, _, _ := newTestEditor()
	accents := make([]types.Color, 0)
	for i := 0; i < len(DefaultPalette)+1; i++ {
		accents = append(accents, e.NewNote().GetAccent())
	}
	require.Equal(t, DefaultPalette[1], accents[0])
	require.Equal(t, DefaultPalette[0], accents[len(DefaultPalette)-1])
	require.Equal(t, DefaultPalette[1], accents[len(DefaultPalette)])

	// closing a window lets the next one reuse its size-based accent
	require.NoError(t, e.CloseActiveWindow())
	require.Equal(t, accents[len(DefaultPalette)], e.NewNote().GetAccent())
}

func TestNewWindowTitle(t *testing.T) {
	e, _, _, _ := newTestEditor()
	w := e.NewNote().(*Window)
	require.Equal(t, "Rhinote", w.GetTitle())
	w.Edit("x")
	require.Equal(t, "Rhinote *", w.GetTitle())
	require.NoError(t, w.SaveTo("/notes/x.txt"))
	require.Equal(t, "Rhinote /notes/x.txt", w.GetTitle())
}
