package content

import "slices"

// Bundle aggregates every artifact produced by one processing run.
// Any field may be nil: a hard failure is an omission, a soft failure
// carries the task's fallback and is listed in Degraded. The slice fields
// serialize as null when absent so an empty result survives a reload.
type Bundle struct {
	KeyMoments        []KeyMoment        `json:"keyMoments"`
	Summary           *Summary           `json:"summary,omitempty"`
	SocialPosts       *SocialPosts       `json:"socialPosts,omitempty"`
	Titles            *Titles            `json:"titles,omitempty"`
	Hashtags          *Hashtags          `json:"hashtags,omitempty"`
	YouTubeTimestamps []YouTubeTimestamp `json:"youtubeTimestamps"`

	Degraded []Artifact `json:"degraded,omitempty"`
	Failed   []Artifact `json:"failed,omitempty"`
}

// Has reports whether the bundle carries a value for a.
func (b *Bundle) Has(a Artifact) bool {
	if b == nil {
		return false
	}
	switch a {
	case ArtifactKeyMoments:
		return b.KeyMoments != nil
	case ArtifactSummary:
		return b.Summary != nil
	case ArtifactSocialPosts:
		return b.SocialPosts != nil
	case ArtifactTitles:
		return b.Titles != nil
	case ArtifactHashtags:
		return b.Hashtags != nil
	case ArtifactYouTubeTimestamps:
		return b.YouTubeTimestamps != nil
	}
	return false
}

func (b *Bundle) IsDegraded(a Artifact) bool {
	return b != nil && slices.Contains(b.Degraded, a)
}

func (b *Bundle) IsFailed(a Artifact) bool {
	return b != nil && slices.Contains(b.Failed, a)
}
