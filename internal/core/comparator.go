package core

import (
	"fmt"

	"github.com/agenthands/concord/internal/core/model"
	"github.com/agenthands/concord/internal/core/segment"
	"github.com/agenthands/concord/internal/core/similarity"
	"github.com/agenthands/concord/internal/core/textdiff"
)

const (
	// DefaultMatchThreshold is the score at or above which two sentences are the same statement.
	DefaultMatchThreshold = 0.95
	// DefaultConflictThreshold is the score at or above which a non-matching pair is a modified restatement.
	DefaultConflictThreshold = 0.5
	// DefaultMinSentenceLength is the rune count a sentence must exceed to be compared.
	DefaultMinSentenceLength = segment.DefaultMinLength
)

type Options struct {
	MatchThreshold    float64
	ConflictThreshold float64
	MinSentenceLength int
}

func DefaultOptions() Options {
	return Options{
		MatchThreshold:    DefaultMatchThreshold,
		ConflictThreshold: DefaultConflictThreshold,
		MinSentenceLength: DefaultMinSentenceLength,
	}
}

func (o Options) Validate() error {
	if o.MatchThreshold < 0 || o.MatchThreshold > 1 {
		return fmt.Errorf("match threshold %v outside [0, 1]", o.MatchThreshold)
	}
	if o.ConflictThreshold < 0 || o.ConflictThreshold > 1 {
		return fmt.Errorf("conflict threshold %v outside [0, 1]", o.ConflictThreshold)
	}
	if o.ConflictThreshold > o.MatchThreshold {
		return fmt.Errorf("conflict threshold %v above match threshold %v", o.ConflictThreshold, o.MatchThreshold)
	}
	if o.MinSentenceLength < 0 {
		return fmt.Errorf("min sentence length %d is negative", o.MinSentenceLength)
	}
	return nil
}

// WordDiffer produces the diff stored on a ConflictItem.
type WordDiffer func(a, b string) []model.Change

// Comparator classifies the sentences of two documents as matches, conflicts, or
// unique content. It holds no per-call state and is safe for concurrent use.
type Comparator struct {
	Options   Options
	Segmenter *segment.Segmenter
	Diff      WordDiffer
}

func NewComparator(opts Options) *Comparator {
	return &Comparator{
		Options:   opts,
		Segmenter: segment.NewSegmenter(opts.MinSentenceLength),
		Diff:      textdiff.Words,
	}
}

// Compare runs one greedy pass over the sentences of A. Each takes the highest scoring
// sentence of B that is still unclaimed (the earliest on ties), and the score decides
// whether the pair is a match, a conflict, or whether the A sentence is unique.
// Unclaimed B sentences are reported in their original order.
func (c *Comparator) Compare(textA, textB string) model.ComparisonReport {
	sentencesA := c.Segmenter.Split(textA)
	sentencesB := c.Segmenter.Split(textB)

	profilesB := make([]similarity.Profile, len(sentencesB))
	for i, s := range sentencesB {
		profilesB[i] = similarity.NewProfile(s)
	}
	consumed := make([]bool, len(sentencesB))

	report := model.NewComparisonReport()

	for _, sentA := range sentencesA {
		profileA := similarity.NewProfile(sentA)

		bestIndex := -1
		bestScore := 0.0
		for i := range sentencesB {
			if consumed[i] {
				continue
			}
			// Strictly greater keeps the first candidate among equal scores
			if score := profileA.Dice(profilesB[i]); score > bestScore {
				bestScore = score
				bestIndex = i
			}
		}

		switch {
		case bestIndex >= 0 && bestScore >= c.Options.MatchThreshold:
			report.MatchCount++
			consumed[bestIndex] = true

		case bestIndex >= 0 && bestScore >= c.Options.ConflictThreshold:
			target := sentencesB[bestIndex]
			report.Conflicts = append(report.Conflicts, model.ConflictItem{
				Type:   model.ItemTypeConflict,
				Source: sentA,
				Target: target,
				Diff:   c.Diff(sentA, target),
				Score:  bestScore,
			})
			consumed[bestIndex] = true

		default:
			report.UniqueToA = append(report.UniqueToA, model.UniqueItem{
				Type:      model.ItemTypeUnique,
				Text:      sentA,
				SourceDoc: model.DocA,
			})
		}
	}

	for i, sentB := range sentencesB {
		if consumed[i] {
			continue
		}
		report.UniqueToB = append(report.UniqueToB, model.UniqueItem{
			Type:      model.ItemTypeUnique,
			Text:      sentB,
			SourceDoc: model.DocB,
		})
	}

	return report
}

var defaultComparator = NewComparator(DefaultOptions())

// Compare compares textA and textB with DefaultOptions.
func Compare(textA, textB string) model.ComparisonReport {
	return defaultComparator.Compare(textA, textB)
}
