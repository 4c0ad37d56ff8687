package model

import "time"

const StatusCompleted = "Completed"

// Document is an uploaded file after text extraction.
type Document struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// PairReport is the comparison of two documents, DocA playing the role of A.
type PairReport struct {
	DocA   string           `json:"doc_a"`
	DocB   string           `json:"doc_b"`
	Report ComparisonReport `json:"report"`
}

type Analysis struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"` // YYYY-MM-DD, UTC
	CreatedAt time.Time    `json:"created_at"`
	Files     int          `json:"files"`     // Documents actually compared
	Conflicts int          `json:"conflicts"` // Sum over all pairs
	Status    string       `json:"status"`
	Skipped   []string     `json:"skipped,omitempty"` // Filenames dropped for having no content
	Pairs     []PairReport `json:"pairs"`
}
