package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

var socialSchema = generator.Object(map[string]*generator.Schema{
	"twitter":   generator.String("Twitter/X post (max 280 characters)"),
	"linkedin":  generator.String("LinkedIn post (300-500 characters)"),
	"instagram": generator.String("Instagram caption (150-200 characters + hashtags)"),
	"tiktok":    generator.String("TikTok caption (100-150 characters)"),
	"youtube":   generator.String("YouTube description (400-600 characters)"),
	"facebook":  generator.String("Facebook post (200-300 characters)"),
}, "twitter", "linkedin", "instagram", "tiktok", "youtube", "facebook")

type SocialPosts struct {
	gen generator.Generator
}

func NewSocialPosts(gen generator.Generator) *SocialPosts {
	return &SocialPosts{gen: gen}
}

func (s *SocialPosts) Name() content.Artifact { return content.ArtifactSocialPosts }

func (s *SocialPosts) Fallback() content.SocialPosts { return content.FallbackSocialPosts() }

// Run generates the posts and truncates an over-long Twitter post instead of
// rejecting it.
func (s *SocialPosts) Run(ctx context.Context, t transcript.Transcript) (content.SocialPosts, error) {
	posts, err := generate[content.SocialPosts](ctx, s.gen, generator.Request{
		Name:   string(content.ArtifactSocialPosts),
		System: socialSystemPrompt,
		Prompt: buildSocialPrompt(t),
		Schema: socialSchema,
	})
	if err != nil {
		return posts, err
	}
	posts.TruncateTwitter()
	return posts, nil
}
