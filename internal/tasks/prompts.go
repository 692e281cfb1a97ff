package tasks

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

const (
	titlesPreviewChars  = 2000
	socialPreviewChars  = 500
	socialTopicLimit    = 5
	summaryPreviewChars = 4000
	// youtubeChapterLimit is the most chapters YouTube accepts in a description.
	youtubeChapterLimit = 100
)

const (
	summarySystemPrompt = "You are an expert podcast editor. You write clear, faithful summaries that help listeners decide what to hear and remember what they heard."

	socialSystemPrompt = "You are a viral social media marketing expert who understands each platform's unique audience, tone, and best practices. You create platform-optimized content that drives engagement and grows audiences."

	titlesSystemPrompt = "You are an expert in SEO, content marketing, and viral content creation. You understand what makes titles clickable while maintaining credibility and search rankings."

	hashtagsSystemPrompt = "You are a social media growth expert who understands platform algorithms and trending hashtag strategies. You create hashtag sets that maximize reach and engagement."

	youtubeSystemPrompt = "You are a YouTube content expert who creates SHORT, DESCRIPTIVE TITLES for video chapters. You create TITLES (like 'Introduction to AI'), NOT transcript text or full sentences. Always respond with valid JSON."
)

// numberedHeadlines lists up to limit chapter headlines as "1. headline".
// A limit <= 0 lists every chapter.
func numberedHeadlines(chapters []transcript.Chapter, limit int) string {
	if limit > 0 && len(chapters) > limit {
		chapters = chapters[:limit]
	}
	lines := make([]string, 0, len(chapters))
	for i, ch := range chapters {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ch.Headline))
	}
	return strings.Join(lines, "\n")
}

func buildSummaryPrompt(t transcript.Transcript) string {
	var b strings.Builder
	b.WriteString("Summarize this podcast episode.\n\n")
	if t.HasChapters() {
		b.WriteString("CHAPTERS:\n")
		for i, ch := range t.Chapters {
			fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, ch.Headline, ch.Summary)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "TRANSCRIPT PREVIEW:\n%s...\n\n", t.Prefix(summaryPreviewChars))
	b.WriteString(`Produce:

1. FULL: a 2-3 paragraph overview of the whole episode.
2. BULLETS (3-7): the main points, one sentence each.
3. INSIGHTS (3-5): takeaways a listener can act on.
4. TLDR: one sentence, under 30 words.

Stay faithful to what was actually said. Do not invent facts.`)
	return b.String()
}

func buildSocialPrompt(t transcript.Transcript) string {
	overview := t.Prefix(socialPreviewChars)
	if t.HasChapters() && t.Chapters[0].Summary != "" {
		overview = t.Chapters[0].Summary
	}
	topics := numberedHeadlines(t.Chapters, socialTopicLimit)
	if topics == "" {
		topics = "See transcript"
	}

	return fmt.Sprintf(`Create platform-specific promotional posts for this podcast episode.

PODCAST SUMMARY:
%s

KEY TOPICS DISCUSSED:
%s

Create 6 unique posts optimized for each platform:

1. TWITTER/X (MAXIMUM 280 characters, STRICT LIMIT):
   - Start with a hook that stops scrolling
   - Include the main value proposition or insight
   - Conversational, punchy tone
   - Must be 280 characters or less, including spaces and emojis

2. LINKEDIN (1-2 paragraphs):
   - Professional, thought-leadership tone
   - Lead with an insight, question, or stat
   - End with an engagement question or CTA

3. INSTAGRAM (caption):
   - Engaging storytelling approach
   - Use emojis strategically (2-4 max)
   - Include call-to-action

4. TIKTOK (short caption):
   - Energetic tone, very concise and punchy
   - Create FOMO or curiosity

5. YOUTUBE (detailed description):
   - SEO-friendly, keyword-rich
   - Explain what viewers will learn
   - Can be longer (2-3 paragraphs)

6. FACEBOOK (2-3 paragraphs):
   - Conversational, community-focused
   - End with question or discussion prompt

Make each post unique and truly optimized for that platform. No generic content.`, overview, topics)
}

func buildTitlesPrompt(t transcript.Transcript) string {
	topics := ""
	if t.HasChapters() {
		topics = "MAIN TOPICS COVERED:\n" + numberedHeadlines(t.Chapters, 0)
	}

	return fmt.Sprintf(`Create optimized titles for this podcast episode.

TRANSCRIPT PREVIEW:
%s...

%s

Generate 4 types of titles:

1. YOUTUBE SHORT TITLES (exactly 3):
   - 40-60 characters each
   - Hook-focused, curiosity-driven
   - Clickable but not clickbait

2. YOUTUBE LONG TITLES (exactly 3):
   - 70-100 characters each
   - Include SEO keywords naturally
   - Format: "Main Topic: Subtitle | Context or Value Prop"

3. PODCAST EPISODE TITLES (exactly 3):
   - Creative, memorable titles
   - Good for RSS feeds and directories

4. SEO KEYWORDS (5-10):
   - High-traffic search terms relevant to the content
   - Mix of broad and niche terms

Make titles compelling, accurate, and optimized for discovery.`, t.Prefix(titlesPreviewChars), topics)
}

func buildHashtagsPrompt(t transcript.Transcript) string {
	topics := numberedHeadlines(t.Chapters, 0)
	if topics == "" {
		topics = "General discussion"
	}

	return fmt.Sprintf(`Create platform-optimized hashtag strategies for this podcast.

TOPICS COVERED:
%s

Generate hashtags for each platform following their best practices:

1. YOUTUBE (exactly 5 hashtags): broad reach, discovery-focused.
2. INSTAGRAM (6-8 hashtags): mix of highly popular and niche community tags.
3. TIKTOK (5-6 hashtags): currently trending, FYP optimization.
4. LINKEDIN (exactly 5 hashtags): professional, industry-relevant.
5. TWITTER (exactly 5 hashtags): concise, topic-specific.

All hashtags must start with the # symbol and be relevant to the actual content discussed.`, topics)
}

type chapterInput struct {
	Index    int
	Seconds  int64
	Headline string
	Summary  string
}

func buildYouTubePrompt(chapters []chapterInput) string {
	var b strings.Builder
	b.WriteString(`Create SHORT CHAPTER TITLES for a video.

INSTRUCTIONS:
- DO NOT copy the transcript text
- DO NOT write full sentences
- Create 3-6 word TITLES only
- Think of these as chapter headings, not subtitles

`)
	fmt.Fprintf(&b, "I have %d chapters with timestamps. For each one, create a SHORT, CATCHY TITLE.\n\nCHAPTERS:\n", len(chapters))
	for _, ch := range chapters {
		fmt.Fprintf(&b, "Chapter %d: [%ds]\nContext: %s\nSummary: %s\n\n", ch.Index, ch.Seconds, ch.Headline, ch.Summary)
	}
	b.WriteString(`GOOD TITLES:
- "Introduction to N8N Automation"
- "Setting Up Your Account"
- "Telegram Bot Creation"

BAD TITLES (transcript excerpts):
- "Today we are diving into n8n one of the most underrated"
- "So we want to give Sarah some instructions so she knows"

Return one entry per chapter as {"titles": [{"index": 0, "title": "..."}]}.`)
	return b.String()
}
