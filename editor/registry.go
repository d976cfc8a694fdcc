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
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/timburks/rhinote/types"
)

// DefaultPalette holds the pastel accents notes cycle through.
var DefaultPalette = []types.Color{219, 159, 229, 147, 157, 217}

// A Registry holds every open window in creation order.
// Windows are added in Create and removed when their close protocol
// finishes, so each live window appears exactly once.
type Registry struct {
	windows          []*Window
	lastWindowNumber int // used to uniquely number windows
	appName          string
	palette          []types.Color
	tabWidth         int
	store            types.Store
	prompter         types.Prompter
	logger           *zap.Logger
}

func NewRegistry(opts Options) *Registry {
	opts.setDefaults()
	return &Registry{
		lastWindowNumber: -1,
		appName:          opts.AppName,
		palette:          opts.Palette,
		tabWidth:         opts.TabWidth,
		store:            opts.Store,
		prompter:         opts.Prompter,
		logger:           opts.Logger,
	}
}

// Create makes a new window with an empty document and registers it.
// Its accent is picked by the registry size after registration, so accents
// repeat once earlier windows close.
func (r *Registry) Create() *Window {
	r.lastWindowNumber++
	w := &Window{
		number:   r.lastWindowNumber,
		appName:  r.appName,
		document: NewDocument(r.store, r.prompter),
		tabWidth: r.tabWidth,
		state:    StateOpen,
		registry: r,
	}
	r.windows = append(r.windows, w)
	w.accent = r.palette[len(r.windows)%len(r.palette)]
	w.RefreshTitle()
	r.logger.Debug("window created", zap.Int("window", w.number), zap.Int("open", len(r.windows)))
	return w
}

func (r *Registry) remove(w *Window) {
	for i, candidate := range r.windows {
		if candidate == w {
			r.windows = append(r.windows[0:i], r.windows[i+1:]...)
			r.logger.Debug("window removed", zap.Int("window", w.number), zap.Int("open", len(r.windows)))
			return
		}
	}
}

func (r *Registry) Len() int {
	return len(r.windows)
}

// Windows returns the open windows in creation order.
func (r *Registry) Windows() []*Window {
	windows := make([]*Window, len(r.windows))
	copy(windows, r.windows)
	return windows
}

func (r *Registry) Find(number int) *Window {
	for _, w := range r.windows {
		if w.number == number {
			return w
		}
	}
	return nil
}

func (r *Registry) IndexOf(w *Window) int {
	for i, candidate := range r.windows {
		if candidate == w {
			return i
		}
	}
	return -1
}

// Last returns the most recently created open window.
func (r *Registry) Last() *Window {
	if len(r.windows) == 0 {
		return nil
	}
	return r.windows[len(r.windows)-1]
}

// CloseAll runs the close protocol on every window, newest first.
// A window whose close is aborted stays open and the pass continues;
// the returned error combines every aborted close.
func (r *Registry) CloseAll() error {
	var err error
	windows := r.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		err = multierr.Append(err, windows[i].RequestClose())
	}
	if err != nil {
		r.logger.Info("close all left notes open", zap.Int("open", len(r.windows)), zap.Error(err))
	}
	return err
}
