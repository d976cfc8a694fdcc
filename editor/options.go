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
	"go.uber.org/zap"

	"github.com/timburks/rhinote/types"
)

const DefaultAppName = "Rhinote"

// Options configure an Editor and its Registry.
type Options struct {
	AppName  string
	Palette  []types.Color
	TabWidth int
	Store    types.Store
	Prompter types.Prompter
	Printer  types.Printer
	Logger   *zap.Logger
}

func (o *Options) setDefaults() {
	if o.AppName == "" {
		o.AppName = DefaultAppName
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	if o.TabWidth <= 0 {
		o.TabWidth = 8
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}
