package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/transcript"
)

// KeyMoments maps every chapter to a key moment. It never calls the
// generative service and never fails.
type KeyMoments struct{}

func NewKeyMoments() KeyMoments { return KeyMoments{} }

func (KeyMoments) Name() content.Artifact { return content.ArtifactKeyMoments }

func (KeyMoments) Run(_ context.Context, t transcript.Transcript) ([]content.KeyMoment, error) {
	moments := make([]content.KeyMoment, 0, len(t.Chapters))
	for _, ch := range t.Chapters {
		seconds := ch.StartSeconds()
		moments = append(moments, content.KeyMoment{
			Time:             content.FormatTimestamp(seconds, content.FormatOptions{ForceHours: true, PadHours: true}),
			TimestampSeconds: seconds,
			Text:             ch.Headline,
			Description:      ch.Summary,
		})
	}
	return moments, nil
}
