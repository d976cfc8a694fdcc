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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timburks/rhinote/types"
)

func newTestDocument() (*Document, *memoryStore, *scriptedPrompter) {
	store := newMemoryStore()
	prompter := &scriptedPrompter{}
	return NewDocument(store, prompter), store, prompter
}

func TestFreshDocumentIsNotModified(t *testing.T) {
	d, _, _ := newTestDocument()
	require.Equal(t, "", d.Text())
	require.Equal(t, "", d.GetSnapshot())
	require.Equal(t, "", d.GetPath())
	require.False(t, d.IsModified())
}

func TestEditComparesWithSnapshot(t *testing.T) {
	d, _, _ := newTestDocument()
	d.Edit("hello")
	require.True(t, d.IsModified())
	d.Edit("")
	require.False(t, d.IsModified())

	require.NoError(t, d.SaveTo("/notes/a.txt"))
	d.Edit("hello again")
	require.True(t, d.IsModified())
	d.Edit("")
	require.False(t, d.IsModified())
}

func TestSaveToBindsPath(t *testing.T) {
	d, store, _ := newTestDocument()
	d.Edit("remember the milk")
	require.NoError(t, d.SaveTo("/notes/milk.txt"))
	require.False(t, d.IsModified())
	require.Equal(t, "/notes/milk.txt", d.GetPath())
	require.Equal(t, "remember the milk", d.GetSnapshot())
	require.Equal(t, "remember the milk", store.files["/notes/milk.txt"])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"one line",
		"trailing newline\n",
		"\ttabs\tand  spaces \n\nblank lines\n\n",
		"unicode: café 日本語",
		"\r\nwindows line ending\r\n",
	} {
		d, _, _ := newTestDocument()
		d.Edit(text)
		require.NoError(t, d.SaveTo("/notes/round.txt"))

		other, _, _ := newTestDocument()
		other.store = d.store
		require.NoError(t, other.LoadFrom("/notes/round.txt"))
		require.Equal(t, text, other.Text())
		require.False(t, other.IsModified())
		require.Equal(t, "/notes/round.txt", other.GetPath())
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	d, store, _ := newTestDocument()
	d.Edit("same text")
	require.NoError(t, d.SaveTo("/notes/same.txt"))
	require.NoError(t, d.Save())
	require.NoError(t, d.Save())
	require.Equal(t, []string{"/notes/same.txt", "/notes/same.txt", "/notes/same.txt"}, store.writes)
	require.Equal(t, "same text", store.files["/notes/same.txt"])
	require.False(t, d.IsModified())
}

func TestSaveWithoutPathAsksForOne(t *testing.T) {
	d, store, prompter := newTestDocument()
	d.Edit("untitled")

	err := d.Save()
	require.ErrorIs(t, err, types.ErrCancelled)
	require.True(t, d.IsModified())
	require.Equal(t, "", d.GetPath())
	require.Empty(t, store.writes)

	prompter.savePath = "/notes/named.txt"
	require.NoError(t, d.Save())
	require.Equal(t, "/notes/named.txt", d.GetPath())
	require.False(t, d.IsModified())
}

func TestFailedWriteChangesNothing(t *testing.T) {
	d, store, _ := newTestDocument()
	d.Edit("first")
	require.NoError(t, d.SaveTo("/notes/first.txt"))
	d.Edit("second")

	store.failWrite = errDiskFull
	err := d.SaveTo("/notes/second.txt")
	require.Error(t, err)
	require.True(t, IsIOError(err))
	require.ErrorIs(t, err, errDiskFull)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	require.Equal(t, "write", ioErr.Op)
	require.Equal(t, "/notes/second.txt", ioErr.Path)

	require.Equal(t, "/notes/first.txt", d.GetPath())
	require.Equal(t, "first", d.GetSnapshot())
	require.Equal(t, "second", d.Text())
	require.True(t, d.IsModified())
}

func TestFailedReadChangesNothing(t *testing.T) {
	d, _, _ := newTestDocument()
	d.Edit("keep me")
	err := d.LoadFrom("/notes/missing.txt")
	require.True(t, IsIOError(err))
	require.Equal(t, "keep me", d.Text())
	require.Equal(t, "", d.GetPath())
}

func TestSplitAndJoinRows(t *testing.T) {
	d, _, _ := newTestDocument()
	d.Edit("hello world")
	d.SplitRow(0, 5)
	require.Equal(t, 2, d.GetRowCount())
	require.Equal(t, "hello\n world", d.Text())
	d.JoinRow(0)
	require.Equal(t, "hello world", d.Text())
	require.Equal(t, 'w', d.DeleteCharacter(0, 6))
	require.Equal(t, "orld", d.TextAfter(0, 6))
}
