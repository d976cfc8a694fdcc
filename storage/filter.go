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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// A Filter narrows the files offered by a path prompt.
// Filters are only a convenience: every file is read and written as plain text.
type Filter struct {
	Name    string
	Pattern string
}

// Filters lists the filters offered by path prompts, the default first.
var Filters = []Filter{
	{Name: "Text/ASCII", Pattern: "*.txt"},
	{Name: "Rhinote files", Pattern: "*.rhi"},
	{Name: "All files", Pattern: "*"},
}

func (f Filter) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Pattern)
}

// Match reports whether the base name of path is accepted by the filter.
func (f Filter) Match(path string) bool {
	ok, err := doublestar.Match(f.Pattern, filepath.Base(path))
	return err == nil && ok
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Complete returns the paths that extend prefix: directories, which end
// in a separator, and the files accepted by the filter. Hidden entries are
// offered only when prefix names them.
func Complete(prefix string, f Filter) ([]string, error) {
	dir, base := filepath.Split(prefix)
	readDir := ExpandHome(dir)
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if entry.IsDir() {
			candidates = append(candidates, dir+name+string(filepath.Separator))
		} else if f.Match(name) {
			candidates = append(candidates, dir+name)
		}
	}
	sort.Strings(candidates)
	return candidates, nil
}

// CommonPrefix returns the longest prefix shared by all candidates.
func CommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
