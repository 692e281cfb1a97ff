package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

var hashtagsSchema = generator.Object(map[string]*generator.Schema{
	"youtube":   generator.StringArray("Exactly 5 YouTube hashtags with # symbol", 5, 5),
	"instagram": generator.StringArray("6-8 Instagram hashtags with # symbol", 6, 8),
	"tiktok":    generator.StringArray("5-6 TikTok hashtags with # symbol", 5, 6),
	"linkedin":  generator.StringArray("Exactly 5 LinkedIn hashtags with # symbol", 5, 5),
	"twitter":   generator.StringArray("Exactly 5 Twitter hashtags with # symbol", 5, 5),
}, "youtube", "instagram", "tiktok", "linkedin", "twitter")

type Hashtags struct {
	gen generator.Generator
}

func NewHashtags(gen generator.Generator) *Hashtags {
	return &Hashtags{gen: gen}
}

func (s *Hashtags) Name() content.Artifact { return content.ArtifactHashtags }

func (s *Hashtags) Fallback() content.Hashtags { return content.FallbackHashtags() }

func (s *Hashtags) Run(ctx context.Context, t transcript.Transcript) (content.Hashtags, error) {
	return generate[content.Hashtags](ctx, s.gen, generator.Request{
		Name:   string(content.ArtifactHashtags),
		System: hashtagsSystemPrompt,
		Prompt: buildHashtagsPrompt(t),
		Schema: hashtagsSchema,
	})
}
