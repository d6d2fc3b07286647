package config

import (
	"context"
	"fmt"

	"github.com/cognicore/lexis/pkg/lexis"
	"github.com/cognicore/lexis/pkg/lexis/stoplist"
	"github.com/cognicore/lexis/pkg/lexis/store"
	"github.com/cognicore/lexis/pkg/lexis/store/sqlite"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// Loader loads the configuration file and constructs components
type Loader struct {
	ConfigPath   string // optional; Default() when empty
	StoplistPath string // optional; overrides stoplist.path from the file
	StorePath    string // optional; overrides store.path from the file
}

// Components holds all loaded configuration components
type Components struct {
	Config    Config
	Tokenizer tokenize.Tokenizer
	Stoplist  *stoplist.Manager
	Store     store.Store // nil when no store path is configured
	Analyzer  *lexis.Analyzer
}

// Close releases the store, if one was opened.
func (c *Components) Close() error {
	if c.Analyzer != nil {
		return c.Analyzer.Close()
	}
	return nil
}

// Load reads the configuration and returns initialized components
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		loaded, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if l.StoplistPath != "" {
		cfg.Stoplist.Path = l.StoplistPath
	}
	if l.StorePath != "" {
		cfg.Store.Path = l.StorePath
	}

	comp := &Components{Config: cfg}

	tok, err := tokenize.New(cfg.Tokenizer)
	if err != nil {
		return nil, fmt.Errorf("build tokenizer: %w", err)
	}
	comp.Tokenizer = tok

	stops, err := buildStoplist(cfg.Stoplist)
	if err != nil {
		return nil, fmt.Errorf("load stoplist: %w", err)
	}
	comp.Stoplist = stops

	if cfg.Store.Path != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
	}

	comp.Analyzer = lexis.New(lexis.Options{
		Tokenizer: comp.Tokenizer,
		Stoplist:  comp.Stoplist,
		Store:     comp.Store,
	})

	return comp, nil
}

func buildStoplist(cfg Stoplist) (*stoplist.Manager, error) {
	var mgr *stoplist.Manager
	switch {
	case cfg.Path != "":
		sl, err := LoadStoplist(cfg.Path)
		if err != nil {
			return nil, err
		}
		mgr = stoplist.NewManager(sl.Terms)
	case len(cfg.Terms) > 0:
		mgr = stoplist.NewManager(cfg.Terms)
	default:
		mgr = stoplist.English()
	}

	for _, w := range cfg.Extra {
		mgr.Add(w)
	}
	for _, w := range cfg.Remove {
		mgr.Remove(w)
	}
	return mgr, nil
}
