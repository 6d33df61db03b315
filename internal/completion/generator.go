// Package completion turns the text typed inside a string literal into a list
// of filesystem entries the editor can offer as completions.
package completion

import (
	"errors"
	"io/fs"
	"os"

	"github.com/atinylittleshell/strpath/internal/host"
	"go.uber.org/zap"
)

// Options configures a Generator.
type Options struct {
	// Filter narrows entries by the text typed after the last separator.
	// The zero value offers every entry.
	Filter Filter

	// ShowSize adds a humanized size to the details of regular files.
	ShowSize bool

	// Exclude lists doublestar patterns; matching entry names are skipped.
	Exclude []string

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Generator produces path completions for a cursor position.
type Generator struct {
	filter   Filter
	showSize bool
	exclude  *excluder
	logger   *zap.Logger
}

// NewGenerator creates a Generator. It fails only on malformed exclude patterns.
func NewGenerator(opts Options) (*Generator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var ex *excluder
	if len(opts.Exclude) > 0 {
		var err error
		ex, err = newExcluder(opts.Exclude)
		if err != nil {
			return nil, err
		}
	}

	return &Generator{
		filter:   opts.Filter,
		showSize: opts.ShowSize,
		exclude:  ex,
		logger:   logger,
	}, nil
}

// Filter returns the configured remainder filter.
func (g *Generator) Filter() Filter {
	return g.filter
}

// Complete answers a completion query for view at the given cursor locations.
// Only the first location is used.
func (g *Generator) Complete(view host.View, prefix string, locations []int) Result {
	if len(locations) == 0 {
		return Decline()
	}
	pt := locations[0]

	// Look one position back so a cursor sitting on the closing quote, or at
	// the end of an unterminated string, still resolves to the string scope.
	scope, ok := view.ExtractScope(pt - 1)
	if !ok || scope.Begin() > pt {
		g.logger.Debug("no scope before cursor", zap.Int("pt", pt))
		return Decline()
	}

	typed := view.Substr(host.Region{A: scope.Begin(), B: pt})
	return g.CompleteTyped(typed)
}

// CompleteTyped answers a completion query for the raw text captured from the
// start of the string scope up to the cursor, quotes included.
func (g *Generator) CompleteTyped(typed string) Result {
	dir, remainder := SplitPath(StripQuotes(typed))
	g.logger.Debug("split typed path",
		zap.String("typed", typed),
		zap.String("dir", dir),
		zap.String("remainder", remainder))

	if dir == "" {
		return NoOpinion()
	}
	dir = ExpandHome(CleanDir(dir))

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return NoOpinion()
	}

	candidates, err := g.ListDir(dir)
	if err != nil {
		g.logger.Warn("failed to list directory", zap.String("dir", dir), zap.Error(err))
		return NoOpinion()
	}

	return Suggestions(g.filter.Apply(candidates, remainder))
}

// ListDir returns one candidate per direct entry of dir. A permission error
// while reading the directory yields no candidates and no error.
func (g *Generator) ListDir(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			g.logger.Debug("permission denied listing directory", zap.String("dir", dir))
			return []Candidate{}, nil
		}
		return nil, err
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if g.exclude.excluded(entry.Name()) {
			continue
		}
		candidates = append(candidates, newCandidate(dir, entry, g.showSize))
	}
	return candidates, nil
}
