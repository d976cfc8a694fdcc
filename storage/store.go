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
package storage

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrNotUTF8 is returned when a file is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("file is not valid UTF-8 text")

const defaultPerm os.FileMode = 0644

// A FileStore keeps notes as plain UTF-8 files.
// A file holds exactly the text of its note, with no header or envelope.
type FileStore struct {
	logger *zap.Logger
}

func NewFileStore(logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{logger: logger}
}

func (s *FileStore) Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrNotUTF8
	}
	s.logger.Debug("read note", zap.String("path", path), zap.Int("bytes", len(b)))
	return string(b), nil
}

// Write replaces the file at path with text. The file is never left half written.
func (s *FileStore) Write(path string, text string) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = info.Mode().Perm()
	}
	if err := writeFileAtomic(path, []byte(text), perm); err != nil {
		return err
	}
	s.logger.Debug("wrote note", zap.String("path", path), zap.Int("bytes", len(text)))
	return nil
}
