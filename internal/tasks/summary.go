package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

var summarySchema = generator.Object(map[string]*generator.Schema{
	"full":     generator.String("2-3 paragraph episode overview"),
	"bullets":  generator.StringArray("3-7 main points", 3, 7),
	"insights": generator.StringArray("3-5 actionable takeaways", 3, 5),
	"tldr":     generator.String("One sentence summary"),
}, "full", "bullets", "insights", "tldr")

type Summary struct {
	gen generator.Generator
}

func NewSummary(gen generator.Generator) *Summary {
	return &Summary{gen: gen}
}

func (s *Summary) Name() content.Artifact { return content.ArtifactSummary }

func (s *Summary) Fallback() content.Summary { return content.FallbackSummary() }

func (s *Summary) Run(ctx context.Context, t transcript.Transcript) (content.Summary, error) {
	return generate[content.Summary](ctx, s.gen, generator.Request{
		Name:   string(content.ArtifactSummary),
		System: summarySystemPrompt,
		Prompt: buildSummaryPrompt(t),
		Schema: summarySchema,
	})
}
