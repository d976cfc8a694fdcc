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

	"go.uber.org/zap"
)

// CloseState is a step of the close protocol.
type CloseState int

const (
	StateOpen CloseState = iota
	StateConfirmingSave
	StateSaving
	StateSkipped
	StateClosed
)

func (s CloseState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateConfirmingSave:
		return "confirming-save"
	case StateSaving:
		return "saving"
	case StateSkipped:
		return "skipped"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

const closeQuestion = "Note has not been saved. Do you wish to save before closing?"

// RequestClose runs the close protocol for this window.
//
// An unmodified window closes at once. A modified window asks whether to
// save first: declining discards the edits and closes, accepting saves and
// closes only if the save succeeds. A cancelled save returns ErrCancelled
// and a failed save is reported to the user and returned; in both cases
// the window stays open and registered. A nil result means the window is gone.
func (w *Window) RequestClose() error {
	if w.state == StateClosed {
		return nil
	}
	log := w.registry.logger.With(zap.Int("window", w.number))
	var err error
	w.state = StateOpen
	for {
		switch w.state {
		case StateOpen:
			if !w.document.IsModified() {
				w.transition(log, StateClosed)
			} else {
				w.transition(log, StateConfirmingSave)
			}
		case StateConfirmingSave:
			if w.registry.prompter.Confirm(closeQuestion) {
				w.transition(log, StateSaving)
			} else {
				w.transition(log, StateSkipped)
			}
		case StateSaving:
			err = w.Save()
			if err != nil {
				if !errors.Is(err, ErrCancelled) {
					w.registry.prompter.Notify(w.appName+" save error", err.Error())
					log.Warn("close aborted", zap.Error(err))
				} else {
					log.Debug("close cancelled")
				}
				w.transition(log, StateOpen)
				return err
			}
			w.transition(log, StateClosed)
		case StateSkipped:
			w.transition(log, StateClosed)
		case StateClosed:
			w.registry.remove(w)
			return nil
		}
	}
}

func (w *Window) transition(log *zap.Logger, next CloseState) {
	log.Debug("close protocol", zap.Stringer("from", w.state), zap.Stringer("to", next))
	w.state = next
}
