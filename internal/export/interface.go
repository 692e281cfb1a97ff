package export

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
)

// Exporter renders a content bundle into shareable files.
type Exporter interface {
	// Export writes <name>.md and <name>.docx into the exporter's directory
	// and returns the docx path.
	Export(ctx context.Context, name, title string, bundle *content.Bundle) (string, error)
}
