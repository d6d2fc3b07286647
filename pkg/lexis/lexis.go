package lexis

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexis/pkg/lexis/collocation"
	"github.com/cognicore/lexis/pkg/lexis/concordance"
	"github.com/cognicore/lexis/pkg/lexis/cooccurrence"
	"github.com/cognicore/lexis/pkg/lexis/freq"
	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/pos"
	"github.com/cognicore/lexis/pkg/lexis/stoplist"
	"github.com/cognicore/lexis/pkg/lexis/store"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// Analyzer is the main facade over the lexical analyses.
//
// An Analyzer holds no per-call state and is safe for concurrent use as
// long as its stoplist is not modified.
type Analyzer struct {
	tok    tokenize.Tokenizer
	stops  *stoplist.Manager
	tagger pos.Tagger
	store  store.Store

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures an Analyzer. Zero fields get defaults: the simple
// tokenizer, the English stoplist and the prose tagger. Store is optional
// and only needed to persist collocation runs.
type Options struct {
	Tokenizer tokenize.Tokenizer
	Stoplist  *stoplist.Manager
	Tagger    pos.Tagger
	Store     store.Store
}

// New creates an Analyzer with the given dependencies
func New(opts Options) *Analyzer {
	a := &Analyzer{
		tok:     opts.Tokenizer,
		stops:   opts.Stoplist,
		tagger:  opts.Tagger,
		store:   opts.Store,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	if a.tok == nil {
		a.tok = tokenize.NewSimple()
	}
	if a.stops == nil {
		a.stops = stoplist.English()
	}
	if a.tagger == nil {
		a.tagger = pos.NewProseTagger()
	}
	return a
}

// Close releases the store, if any.
func (a *Analyzer) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Tokenizer returns the tokenizer in use.
func (a *Analyzer) Tokenizer() tokenize.Tokenizer { return a.tok }

// Stoplist returns the stopword set in use.
func (a *Analyzer) Stoplist() *stoplist.Manager { return a.stops }

// Concordance returns a window of width words around every match of expr.
func (a *Analyzer) Concordance(text, expr string, width int) ([]string, error) {
	return concordance.Windows(a.tok, text, expr, width)
}

// ConcordanceMatches is Concordance with match positions.
func (a *Analyzer) ConcordanceMatches(text, expr string, width int) ([]concordance.Match, error) {
	return concordance.Matches(a.tok, text, expr, width)
}

// Collocation counts the words found near matches of expr.
func (a *Analyzer) Collocation(text, expr string, width int) (*freq.Map, error) {
	return collocation.Count(a.tok, a.stops, text, expr, width)
}

// CollocationDocuments counts collocates in each document separately and
// sums the counts, so no window spans two documents.
func (a *Analyzer) CollocationDocuments(docs []string, expr string, width int) (*freq.Map, error) {
	total := freq.NewMap()
	for _, doc := range docs {
		counts, err := a.Collocation(doc, expr, width)
		if err != nil {
			return nil, err
		}
		total.Merge(counts)
	}
	return total, nil
}

// Cooccurrence returns the sentences where word1 and word2 appear at most
// maxDistance tokens apart.
func (a *Analyzer) Cooccurrence(text, word1, word2 string, maxDistance int) ([]string, error) {
	return cooccurrence.Find(a.tok, text, word1, word2, maxDistance)
}

// SortByValue orders a frequency map by count. See freq.SortByValue.
func (a *Analyzer) SortByValue(m *freq.Map, ascending bool) []freq.Pair {
	return freq.SortByValue(m, ascending)
}

// Tag assigns PTB tags and coarse categories to the words of text.
func (a *Analyzer) Tag(text string) ([]pos.TaggedToken, error) {
	return a.tagger.Tag(text)
}

// CollocationRequest describes a collocation run.
type CollocationRequest struct {
	Source    string // free-form label of the analysed text, e.g. a file name
	Text      string
	Documents []string // analysed one by one instead of Text when non-empty
	Pattern   string
	Width     int
	Save      bool // persist the run in the store
	Now       time.Time
}

// Collocate counts collocates for req and returns them as a run, sorted by
// descending count. With req.Save the run is written to the store.
func (a *Analyzer) Collocate(ctx context.Context, req CollocationRequest) (store.Run, error) {
	docs := req.Documents
	if len(docs) == 0 {
		docs = []string{req.Text}
	}
	counts, err := a.CollocationDocuments(docs, req.Pattern, req.Width)
	if err != nil {
		return store.Run{}, err
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	run := store.Run{
		ID:        a.newID(now),
		Source:    req.Source,
		Pattern:   req.Pattern,
		Width:     req.Width,
		CreatedAt: now.UTC(),
		Counts:    freq.SortByValue(counts, false),
	}

	if req.Save {
		if a.store == nil {
			return store.Run{}, fmt.Errorf("save run: no store configured: %w", internalerr.ErrInvalidConfig)
		}
		if err := a.store.SaveRun(ctx, run); err != nil {
			return store.Run{}, fmt.Errorf("save run: %w", err)
		}
	}
	return run, nil
}

// Runs lists stored collocation runs, newest first.
func (a *Analyzer) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	if a.store == nil {
		return nil, fmt.Errorf("list runs: no store configured: %w", internalerr.ErrInvalidConfig)
	}
	return a.store.ListRuns(ctx, limit)
}

// Run returns one stored run with its counts.
func (a *Analyzer) Run(ctx context.Context, id string) (store.Run, error) {
	if a.store == nil {
		return store.Run{}, fmt.Errorf("get run: no store configured: %w", internalerr.ErrInvalidConfig)
	}
	return a.store.GetRun(ctx, id)
}

// DeleteRun removes a stored run.
func (a *Analyzer) DeleteRun(ctx context.Context, id string) error {
	if a.store == nil {
		return fmt.Errorf("delete run: no store configured: %w", internalerr.ErrInvalidConfig)
	}
	return a.store.DeleteRun(ctx, id)
}

// TopCollocates sums the counts of every stored run for pattern and
// returns the k most frequent words.
func (a *Analyzer) TopCollocates(ctx context.Context, pattern string, k int) ([]freq.Pair, error) {
	if a.store == nil {
		return nil, fmt.Errorf("top collocates: no store configured: %w", internalerr.ErrInvalidConfig)
	}
	return a.store.TopCollocates(ctx, pattern, k)
}

func (a *Analyzer) newID(t time.Time) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), a.entropy).String()
}
