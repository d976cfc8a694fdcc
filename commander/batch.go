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
	"go.uber.org/zap"

	"github.com/timburks/rhinote/types"
)

// A BatchPrompter answers prompts while a script runs without a terminal.
// It always asks to save, but can never supply a path, so a note that was
// never saved refuses to close instead of losing its text.
type BatchPrompter struct {
	logger *zap.Logger
}

func NewBatchPrompter(logger *zap.Logger) *BatchPrompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchPrompter{logger: logger}
}

func (p *BatchPrompter) PromptOpenPath() (string, error) {
	return "", types.ErrCancelled
}

func (p *BatchPrompter) PromptSavePath() (string, error) {
	return "", types.ErrCancelled
}

func (p *BatchPrompter) Confirm(question string) bool {
	p.logger.Debug("confirm", zap.String("question", question))
	return true
}

func (p *BatchPrompter) Notify(title string, message string) {
	p.logger.Warn(title, zap.String("message", message))
}
