package model

// SourceDoc identifies which side of a comparison a sentence came from.
type SourceDoc string

const (
	DocA SourceDoc = "A"
	DocB SourceDoc = "B"
)

const (
	ItemTypeConflict = "conflict"
	ItemTypeUnique   = "unique"
)

// Change is one part of a word-level diff. At most one of Added and Removed is set;
// neither set means the value is shared by both sentences.
type Change struct {
	Value   string `json:"value"`
	Added   bool   `json:"added"`
	Removed bool   `json:"removed"`
}

// ConflictItem is a sentence of A and its closest counterpart in B, similar enough to be
// the same statement but not identical.
type ConflictItem struct {
	Type   string   `json:"type"`   // always "conflict"
	Source string   `json:"source"` // From Doc A
	Target string   `json:"target"` // From Doc B
	Diff   []Change `json:"diff"`
	Score  float64  `json:"score"`
}

type UniqueItem struct {
	Type      string    `json:"type"` // always "unique"
	Text      string    `json:"text"`
	SourceDoc SourceDoc `json:"sourceDoc"`
}

type ComparisonReport struct {
	Conflicts  []ConflictItem `json:"conflicts"`
	UniqueToA  []UniqueItem   `json:"uniqueToA"`
	UniqueToB  []UniqueItem   `json:"uniqueToB"`
	MatchCount int            `json:"matchCount"`
}

// NewComparisonReport returns an empty report whose lists encode as [] rather than null.
func NewComparisonReport() ComparisonReport {
	return ComparisonReport{
		Conflicts: []ConflictItem{},
		UniqueToA: []UniqueItem{},
		UniqueToB: []UniqueItem{},
	}
}
