package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
)

func (e *implExporter) Export(ctx context.Context, name, title string, bundle *content.Bundle) (string, error) {
	if bundle == nil {
		return "", fmt.Errorf("export %s: bundle is nil", name)
	}
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	base := filepath.Join(e.dir, sanitizeName(name))
	md := RenderMarkdown(title, bundle)

	if err := os.WriteFile(base+".md", []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	docxPath := base + ".docx"
	if err := markdownToDocx(md, docxPath); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}

	e.logger.Info(ctx, "Exported content kit: %s", docxPath)
	return docxPath, nil
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "episode"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
