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
package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := make([]map[string]interface{}, 0)
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhinotelog")
	logger, closeLog, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("saved", zap.String("path", "/notes/a.txt"))
	require.NoError(t, logger.Sync())
	require.NoError(t, closeLog())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	require.Equal(t, "INFO", entries[0]["level"])
	require.Equal(t, "saved", entries[0]["msg"])
	require.Equal(t, "/notes/a.txt", entries[0]["path"])
	require.Contains(t, entries[0], "timestamp")
	require.Contains(t, entries[0], "caller")
}

func TestVerboseKeepsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhinotelog")
	logger, closeLog, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("shown")
	require.NoError(t, closeLog())
	require.Len(t, readEntries(t, path), 1)
}

func TestNewFailsForBadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "log"), false)
	require.Error(t, err)
}
