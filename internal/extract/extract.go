package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/agenthands/concord/internal/core/model"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor turns the raw bytes of an uploaded file into plain text.
type Extractor interface {
	Extract(name string, data []byte) (string, error)
}

// PlainText accepts text-based files: anything whose content sniffs as text/*, plus
// Markdown by extension. Binary formats such as PDF or DOCX are rejected.
type PlainText struct{}

func (PlainText) Extract(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".md" || ext == ".markdown" {
		return string(data), nil
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "text/") {
		return "", fmt.Errorf("%s (%s): %w", name, mt.String(), ErrUnsupportedType)
	}
	return string(data), nil
}

// LoadFiles reads and extracts each path. Files of unsupported type are returned in
// skipped rather than failing the whole load.
func LoadFiles(ex Extractor, paths []string) (docs []model.Document, skipped []string, err error) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", p, err)
		}

		name := filepath.Base(p)
		text, err := ex.Extract(name, data)
		if errors.Is(err, ErrUnsupportedType) {
			skipped = append(skipped, name)
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		docs = append(docs, model.Document{Filename: name, Content: text})
	}
	return docs, skipped, nil
}
