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

// Package printer sends note text to the system print spooler.
package printer

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrNoPrintCommand is returned when neither lp nor lpr can be found.
var ErrNoPrintCommand = errors.New("print command (lp or lpr) not found")

// A PrintError reports a failed print. It is never fatal.
type PrintError struct {
	Err error
}

func (e *PrintError) Error() string {
	return "printing failed: " + e.Err.Error()
}

func (e *PrintError) Unwrap() error {
	return e.Err
}

type Options struct {
	Title         string   // job title passed to lp or lpr
	PrintCommand  []string // overrides lp/lpr discovery
	FormatCommand []string // overrides enscript discovery
	NoFormat      bool     // send raw text even if enscript is installed
	Logger        *zap.Logger
}

// A Printer pipes text through an optional formatter into lp or lpr.
type Printer struct {
	print  []string
	format []string
	logger *zap.Logger
}

func NewPrinter(opts Options) *Printer {
	p := &Printer{logger: opts.Logger}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	if opts.Title == "" {
		opts.Title = "Rhinote file"
	}
	p.print = opts.PrintCommand
	if len(p.print) == 0 {
		if path, err := exec.LookPath("lp"); err == nil {
			p.print = []string{path, "-t", opts.Title}
		} else if path, err := exec.LookPath("lpr"); err == nil {
			p.print = []string{path, "-T", opts.Title}
		}
	}
	p.format = opts.FormatCommand
	if len(p.format) == 0 && !opts.NoFormat {
		if path, err := exec.LookPath("enscript"); err == nil {
			p.format = []string{path, "--noheader", "--word-wrap", "-p", "-"}
		}
	}
	if opts.NoFormat {
		p.format = nil
	}
	return p
}

// Print formats text if a formatter is available and sends it to the spooler.
func (p *Printer) Print(text string) error {
	if len(p.print) == 0 {
		return &PrintError{Err: ErrNoPrintCommand}
	}
	input := []byte(text)
	if len(p.format) > 0 {
		formatted, err := run(p.format, input)
		if err != nil {
			return &PrintError{Err: err}
		}
		input = formatted
	}
	if _, err := run(p.print, input); err != nil {
		return &PrintError{Err: err}
	}
	p.logger.Info("printed", zap.String("command", p.print[0]), zap.Int("bytes", len(text)))
	return nil
}

func run(argv []string, input []byte) ([]byte, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", argv[0], err, msg)
		}
		return nil, fmt.Errorf("%s: %w", argv[0], err)
	}
	return stdout.Bytes(), nil
}
