package content

// FailureMarker prefixes placeholder text so degraded output is visible.
const FailureMarker = "⚠️"

// The Fallback* constructors return the single canonical value a task yields
// when generation fails. Each satisfies the artifact's contract.

func FallbackSummary() Summary {
	const msg = FailureMarker + " Summary generation failed. Check logs for details."
	return Summary{
		Full:     msg,
		Bullets:  []string{msg, msg, msg},
		Insights: []string{msg, msg, msg},
		TLDR:     msg,
	}
}

func FallbackSocialPosts() SocialPosts {
	const msg = FailureMarker + " Error generating social post. Check logs for details."
	return SocialPosts{
		Twitter:   msg,
		LinkedIn:  msg,
		Instagram: msg,
		TikTok:    msg,
		YouTube:   msg,
		Facebook:  msg,
	}
}

func FallbackTitles() Titles {
	return Titles{
		YoutubeShort:  []string{FailureMarker + " Title generation failed", "Podcast Episode", "New Episode"},
		YoutubeLong:   []string{FailureMarker + " Title generation failed - check logs", "Podcast Episode - Full Discussion", "Complete Episode"},
		PodcastTitles: []string{FailureMarker + " Title generation failed", "New Episode", "Latest Episode"},
		SEOKeywords:   []string{"podcast", "episode", "discussion", "interview", "conversation"},
	}
}

func FallbackHashtags() Hashtags {
	return Hashtags{
		YouTube:   []string{"#Podcast", "#NewEpisode", "#PodcastEpisode", "#Interview", "#Conversation"},
		Instagram: []string{"#Podcast", "#NewEpisode", "#PodcastLife", "#Podcaster", "#ListenNow", "#PodcastRecommendations"},
		TikTok:    []string{"#Podcast", "#FYP", "#PodcastClips", "#NewEpisode", "#ListenNow"},
		LinkedIn:  []string{"#Podcast", "#Leadership", "#Learning", "#Insights", "#ThoughtLeadership"},
		Twitter:   []string{"#Podcast", "#NewEpisode", "#ListenNow", "#Interview", "#Conversation"},
	}
}
