package export

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
)

// RenderMarkdown lays out every present artifact of b as a markdown content kit.
func RenderMarkdown(title string, b *content.Bundle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if b.Summary != nil {
		section(&sb, "Summary", b, content.ArtifactSummary)
		fmt.Fprintf(&sb, "**TL;DR:** %s\n\n%s\n\n", b.Summary.TLDR, b.Summary.Full)
		sb.WriteString("### Key points\n")
		bullets(&sb, b.Summary.Bullets)
		sb.WriteString("### Insights\n")
		bullets(&sb, b.Summary.Insights)
	}

	if len(b.KeyMoments) > 0 {
		section(&sb, "Key moments", b, content.ArtifactKeyMoments)
		for _, m := range b.KeyMoments {
			fmt.Fprintf(&sb, "- **%s** %s: %s\n", m.Time, m.Text, m.Description)
		}
		sb.WriteString("\n")
	}

	if len(b.YouTubeTimestamps) > 0 {
		section(&sb, "YouTube chapters", b, content.ArtifactYouTubeTimestamps)
		for _, ts := range b.YouTubeTimestamps {
			fmt.Fprintf(&sb, "%s %s\n", ts.Timestamp, ts.Description)
		}
		sb.WriteString("\n")
	}

	if b.Titles != nil {
		section(&sb, "Titles", b, content.ArtifactTitles)
		sb.WriteString("### YouTube (short)\n")
		bullets(&sb, b.Titles.YoutubeShort)
		sb.WriteString("### YouTube (long)\n")
		bullets(&sb, b.Titles.YoutubeLong)
		sb.WriteString("### Podcast\n")
		bullets(&sb, b.Titles.PodcastTitles)
		fmt.Fprintf(&sb, "**SEO keywords:** %s\n\n", strings.Join(b.Titles.SEOKeywords, ", "))
	}

	if b.SocialPosts != nil {
		section(&sb, "Social posts", b, content.ArtifactSocialPosts)
		p := b.SocialPosts
		for _, post := range []struct{ name, text string }{
			{"Twitter/X", p.Twitter},
			{"LinkedIn", p.LinkedIn},
			{"Instagram", p.Instagram},
			{"TikTok", p.TikTok},
			{"YouTube", p.YouTube},
			{"Facebook", p.Facebook},
		} {
			fmt.Fprintf(&sb, "### %s\n%s\n\n", post.name, post.text)
		}
	}

	if b.Hashtags != nil {
		section(&sb, "Hashtags", b, content.ArtifactHashtags)
		h := b.Hashtags
		fmt.Fprintf(&sb, "- **YouTube:** %s\n", strings.Join(h.YouTube, " "))
		fmt.Fprintf(&sb, "- **Instagram:** %s\n", strings.Join(h.Instagram, " "))
		fmt.Fprintf(&sb, "- **TikTok:** %s\n", strings.Join(h.TikTok, " "))
		fmt.Fprintf(&sb, "- **LinkedIn:** %s\n", strings.Join(h.LinkedIn, " "))
		fmt.Fprintf(&sb, "- **Twitter:** %s\n\n", strings.Join(h.Twitter, " "))
	}

	if len(b.Failed) > 0 {
		sb.WriteString("---\n")
		for _, a := range b.Failed {
			fmt.Fprintf(&sb, "%s %s could not be generated.\n", content.FailureMarker, a)
		}
	}
	return sb.String()
}

func section(sb *strings.Builder, heading string, b *content.Bundle, a content.Artifact) {
	if b.IsDegraded(a) {
		heading += " " + content.FailureMarker
	}
	fmt.Fprintf(sb, "## %s\n\n", heading)
}

func bullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}
