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
	"os"

	"github.com/timburks/rhinote/types"
)

// memoryStore keeps files in a map.
type memoryStore struct {
	files     map[string]string
	writes    []string
	failWrite error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{files: make(map[string]string)}
}

func (s *memoryStore) Read(path string) (string, error) {
	text, ok := s.files[path]
	if !ok {
		return "", os.ErrNotExist
	}
	return text, nil
}

func (s *memoryStore) Write(path string, text string) error {
	if s.failWrite != nil {
		return s.failWrite
	}
	s.files[path] = text
	s.writes = append(s.writes, path)
	return nil
}

// scriptedPrompter answers prompts from fields set by each test.
// Confirm pops answers in order and says no once they run out.
type scriptedPrompter struct {
	openPath  string
	openErr   error
	savePath  string
	saveErr   error
	answers   []bool
	questions []string
	notices   []string
}

func (p *scriptedPrompter) PromptOpenPath() (string, error) {
	return p.openPath, p.openErr
}

func (p *scriptedPrompter) PromptSavePath() (string, error) {
	if p.saveErr == nil && p.savePath == "" {
		return "", types.ErrCancelled
	}
	return p.savePath, p.saveErr
}

func (p *scriptedPrompter) Confirm(question string) bool {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return false
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

func (p *scriptedPrompter) Notify(title string, message string) {
	p.notices = append(p.notices, title+": "+message)
}

type recordingPrinter struct {
	printed []string
	err     error
}

func (p *recordingPrinter) Print(text string) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, text)
	return nil
}

var errDiskFull = errors.New("disk full")

func newTestEditor() (*Editor, *memoryStore, *scriptedPrompter, *recordingPrinter) {
	store := newMemoryStore()
	prompter := &scriptedPrompter{}
	printer := &recordingPrinter{}
	e := NewEditor(Options{Store: store, Prompter: prompter, Printer: printer})
	return e, store, prompter, printer
}
