package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

var titlesSchema = generator.Object(map[string]*generator.Schema{
	"youtubeShort":  generator.StringArray("Exactly 3 short YouTube titles (40-60 chars each)", 3, 3),
	"youtubeLong":   generator.StringArray("Exactly 3 long YouTube titles (70-100 chars each)", 3, 3),
	"podcastTitles": generator.StringArray("Exactly 3 creative podcast episode titles", 3, 3),
	"seoKeywords":   generator.StringArray("5-10 SEO keywords", 5, 10),
}, "youtubeShort", "youtubeLong", "podcastTitles", "seoKeywords")

type Titles struct {
	gen generator.Generator
}

func NewTitles(gen generator.Generator) *Titles {
	return &Titles{gen: gen}
}

func (s *Titles) Name() content.Artifact { return content.ArtifactTitles }

func (s *Titles) Fallback() content.Titles { return content.FallbackTitles() }

func (s *Titles) Run(ctx context.Context, t transcript.Transcript) (content.Titles, error) {
	return generate[content.Titles](ctx, s.gen, generator.Request{
		Name:   string(content.ArtifactTitles),
		System: titlesSystemPrompt,
		Prompt: buildTitlesPrompt(t),
		Schema: titlesSchema,
	})
}
