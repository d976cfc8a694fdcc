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
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/timburks/rhinote/commander"
	"github.com/timburks/rhinote/config"
	"github.com/timburks/rhinote/editor"
	applog "github.com/timburks/rhinote/logger"
	"github.com/timburks/rhinote/printer"
	"github.com/timburks/rhinote/screen"
	"github.com/timburks/rhinote/storage"
)

var (
	configPath string
	script     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rhinote [files...]",
	Short: "Sticky notes for the terminal",
	Long: `Rhinote keeps each note in its own window. Notes are plain text files;
closing a note or quitting offers to save anything that has not been saved.`,
	Version:      commander.Version,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/rhinote/config.yaml)")
	rootCmd.Flags().StringVar(&script, "eval", "", "run a lisp script without a terminal and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, filenames []string) error {
	// A .env file is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	defer logger.Sync()

	p := printer.NewPrinter(printer.Options{
		Title:         cfg.AppName + " file",
		PrintCommand:  cfg.PrintCommand,
		FormatCommand: cfg.FormatCommand,
		NoFormat:      cfg.NoFormat,
		Logger:        logger,
	})
	opts := editor.Options{
		AppName:  cfg.AppName,
		Palette:  cfg.Accents(),
		TabWidth: cfg.TabWidth,
		Store:    storage.NewFileStore(logger),
		Printer:  p,
		Logger:   logger,
	}

	if script != "" {
		// Run a script and exit.
		opts.Prompter = commander.NewBatchPrompter(logger)
		e := editor.NewEditor(opts)
		openNotes(e, filenames, logger)
		c := commander.NewCommander(e, opts.Prompter, logger)
		return c.ParseEvalFile(script)
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer s.Close()

	// The editor manages all notes.
	opts.Prompter = s
	e := editor.NewEditor(opts)
	openNotes(e, filenames, logger)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, s, logger)
	logger.Info("started", zap.Int("notes", e.WindowCount()))

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			logger.Error("event", zap.Error(err))
		}
	}
	logger.Info("stopped", zap.Int("notes", e.WindowCount()))
	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, func() error, error) {
	logger, closeLog, err := applog.New(cfg.LogFile, verbose || cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return zap.NewNop(), func() error { return nil }, nil
	}
	return logger, closeLog, nil
}

// openNotes opens one note per file, or a single empty note.
// A file that does not exist yet is created empty.
func openNotes(e *editor.Editor, filenames []string, logger *zap.Logger) {
	for _, filename := range filenames {
		e.NewNote()
		err := e.OpenPath(filename)
		if errors.Is(err, fs.ErrNotExist) {
			err = e.SaveTo(filename)
		}
		if err != nil {
			logger.Warn("could not open", zap.String("path", filename), zap.Error(err))
		}
	}
	if e.WindowCount() == 0 {
		e.NewNote()
	}
}
