package transcript

// Chapter is a machine-detected topical segment of a transcript.
// Chapters arrive ordered by StartMs and are never re-sorted.
type Chapter struct {
	StartMs  int64  `json:"start"`
	EndMs    int64  `json:"end"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Gist     string `json:"gist"`
}

// StartSeconds returns the chapter start in fractional seconds.
func (c Chapter) StartSeconds() float64 {
	return float64(c.StartMs) / 1000
}

// Transcript is the normalized transcription result handed to the pipeline.
// Chapters may be empty.
type Transcript struct {
	Text     string    `json:"text"`
	Chapters []Chapter `json:"chapters"`
}

// HasChapters reports whether any chapter timing is available.
func (t Transcript) HasChapters() bool {
	return len(t.Chapters) > 0
}

// Prefix returns at most n runes of the transcript text.
func (t Transcript) Prefix(n int) string {
	runes := []rune(t.Text)
	if len(runes) <= n {
		return t.Text
	}
	return string(runes[:n])
}

// Document is the on-disk envelope delivered by the transcription step.
type Document struct {
	ProjectID string `json:"project_id,omitempty"`
	Title     string `json:"title,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	Transcript
}

// EstimateDurationFromSize approximates audio length in whole seconds,
// assuming roughly eight minutes of audio per megabyte.
func EstimateDurationFromSize(sizeBytes int64) int64 {
	if sizeBytes <= 0 {
		return 0
	}
	return int64(float64(sizeBytes) / (1024 * 1024) * 8 * 60)
}
