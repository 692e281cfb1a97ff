package content

// Artifact names one derived output of a processing run.
type Artifact string

const (
	ArtifactKeyMoments        Artifact = "keyMoments"
	ArtifactSummary           Artifact = "summary"
	ArtifactSocialPosts       Artifact = "socialPosts"
	ArtifactTitles            Artifact = "titles"
	ArtifactHashtags          Artifact = "hashtags"
	ArtifactYouTubeTimestamps Artifact = "youtubeTimestamps"
)

// AllArtifacts lists every artifact in bundle order.
var AllArtifacts = []Artifact{
	ArtifactKeyMoments,
	ArtifactSummary,
	ArtifactSocialPosts,
	ArtifactTitles,
	ArtifactHashtags,
	ArtifactYouTubeTimestamps,
}

// Status is the lifecycle state of a project record.
type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further transition is expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// KeyMoment is derived 1:1 from a transcript chapter.
type KeyMoment struct {
	Time             string  `json:"time"`
	TimestampSeconds float64 `json:"timestamp"`
	Text             string  `json:"text"`
	Description      string  `json:"description"`
}

// YouTubeTimestamp is one line of a YouTube chapter list.
type YouTubeTimestamp struct {
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}

type Summary struct {
	Full     string   `json:"full" validate:"required"`
	Bullets  []string `json:"bullets" validate:"min=3,max=7,dive,required"`
	Insights []string `json:"insights" validate:"min=3,max=5,dive,required"`
	TLDR     string   `json:"tldr" validate:"required"`
}

// SocialPosts holds one promotional post per platform. Twitter is capped at
// TwitterMaxChars after post-processing, not by validation.
type SocialPosts struct {
	Twitter   string `json:"twitter" validate:"required"`
	LinkedIn  string `json:"linkedin" validate:"required"`
	Instagram string `json:"instagram" validate:"required"`
	TikTok    string `json:"tiktok" validate:"required"`
	YouTube   string `json:"youtube" validate:"required"`
	Facebook  string `json:"facebook" validate:"required"`
}

type Titles struct {
	YoutubeShort  []string `json:"youtubeShort" validate:"len=3,dive,notblank"`
	YoutubeLong   []string `json:"youtubeLong" validate:"len=3,dive,notblank"`
	PodcastTitles []string `json:"podcastTitles" validate:"len=3,dive,notblank"`
	SEOKeywords   []string `json:"seoKeywords" validate:"min=5,max=10,dive,notblank"`
}

type Hashtags struct {
	YouTube   []string `json:"youtube" validate:"len=5,unique,dive,hashtag"`
	Instagram []string `json:"instagram" validate:"min=6,max=8,unique,dive,hashtag"`
	TikTok    []string `json:"tiktok" validate:"min=5,max=6,unique,dive,hashtag"`
	LinkedIn  []string `json:"linkedin" validate:"len=5,unique,dive,hashtag"`
	Twitter   []string `json:"twitter" validate:"len=5,unique,dive,hashtag"`
}
