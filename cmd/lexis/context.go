package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cognicore/lexis/pkg/lexis/config"
)

type globalFlags struct {
	config   string
	stoplist string
	store    string
	logLevel string
	json     bool
}

type commandContext struct {
	flags *globalFlags

	loadOnce sync.Once
	comps    *config.Components
	loadErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// components loads configuration and builds the analyzer once per process.
func (c *commandContext) components(cmd *cobra.Command) (*config.Components, error) {
	c.loadOnce.Do(func() {
		loader := config.Loader{
			ConfigPath:   strings.TrimSpace(c.flags.config),
			StoplistPath: strings.TrimSpace(c.flags.stoplist),
			StorePath:    strings.TrimSpace(c.flags.store),
		}
		comps, err := loader.Load(cmd.Context())
		if err != nil {
			c.loadErr = err
			return
		}
		c.comps = comps

		level := comps.Config.LogLevel
		if c.flags.logLevel != "" {
			level = c.flags.logLevel
		}
		slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		slog.Debug("configuration loaded",
			"tokenizer", comps.Config.Tokenizer,
			"stopwords", comps.Stoplist.Len(),
			"store", comps.Config.Store.Path)
	})
	return c.comps, c.loadErr
}

func (c *commandContext) close() error {
	if c.comps == nil {
		return nil
	}
	return c.comps.Close()
}

// jsonOutput reports whether results should be written as JSON: on request,
// or when stdout is not a terminal.
func (c *commandContext) jsonOutput(cmd *cobra.Command) bool {
	if c.flags.json {
		return true
	}
	return !isTerminal(cmd.OutOrStdout())
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
