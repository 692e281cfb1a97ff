package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Decode reads a Document from r and rejects negative chapter starts.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode transcript: %w", err)
	}
	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	doc.ProjectID = strings.TrimSpace(doc.ProjectID)
	return doc, nil
}

// LoadFile reads and decodes a transcript document from path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (d Document) validate() error {
	for i, ch := range d.Chapters {
		if ch.StartMs < 0 {
			return fmt.Errorf("chapter %d: negative start %d", i, ch.StartMs)
		}
	}
	return nil
}
