package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/concord/internal/core"
	"github.com/agenthands/concord/internal/core/model"
)

// Analyzer validates a set of uploaded documents and compares every pair of them.
type Analyzer struct {
	Comparator *core.Comparator
	Log        logrus.FieldLogger

	// Overridable for tests
	NewID func() string
	Now   func() time.Time
}

func NewAnalyzer(comparator *core.Comparator, log logrus.FieldLogger) *Analyzer {
	return &Analyzer{
		Comparator: comparator,
		Log:        log,
		NewID:      func() string { return uuid.New().String() },
		Now:        time.Now,
	}
}

// Analyze compares documents pairwise in upload order, the earlier document of each
// pair playing the role of A. Documents with blank content are skipped; at least two
// must remain.
func (a *Analyzer) Analyze(ctx context.Context, docs []model.Document) (*model.Analysis, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	if len(docs) < 2 {
		return nil, ErrTooFewDocuments
	}

	var valid []model.Document
	var skipped []string
	for _, d := range docs {
		if strings.TrimSpace(d.Content) == "" {
			skipped = append(skipped, d.Filename)
			continue
		}
		valid = append(valid, d)
	}
	if len(valid) < 2 {
		return nil, fmt.Errorf("%d of %d documents have content: %w", len(valid), len(docs), ErrInsufficientContent)
	}

	if len(skipped) > 0 {
		a.Log.WithField("skipped", skipped).Warn("Skipping documents without content")
	}

	began := time.Now()
	start := a.Now()
	result := &model.Analysis{
		ID:        a.NewID(),
		CreatedAt: start.UTC(),
		Date:      start.UTC().Format(time.DateOnly),
		Files:     len(valid),
		Status:    model.StatusCompleted,
		Skipped:   skipped,
		Pairs:     make([]model.PairReport, 0, len(valid)*(len(valid)-1)/2),
	}

	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("analysis %s interrupted: %w", result.ID, err)
			}

			report := a.Comparator.Compare(valid[i].Content, valid[j].Content)
			result.Conflicts += len(report.Conflicts)
			result.Pairs = append(result.Pairs, model.PairReport{
				DocA:   valid[i].Filename,
				DocB:   valid[j].Filename,
				Report: report,
			})

			a.Log.WithFields(logrus.Fields{
				"analysis":  result.ID,
				"doc_a":     valid[i].Filename,
				"doc_b":     valid[j].Filename,
				"matches":   report.MatchCount,
				"conflicts": len(report.Conflicts),
			}).Debug("Compared document pair")
		}
	}

	a.Log.WithFields(logrus.Fields{
		"analysis":  result.ID,
		"files":     result.Files,
		"pairs":     len(result.Pairs),
		"conflicts": result.Conflicts,
		"elapsed":   time.Since(began),
	}).Info("Analysis completed")

	return result, nil
}
