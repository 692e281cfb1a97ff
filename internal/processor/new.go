package processor

import (
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/episode-flow/internal/config"
	"github.com/nguyentantai21042004/episode-flow/internal/export"
	"github.com/nguyentantai21042004/episode-flow/internal/logger"
)

type implProcessor struct {
	cfg          *config.Config
	orchestrator Orchestrator
	store        Store
	exporter     export.Exporter
	logger       logger.Logger
	newID        func() string
}

// New creates a Processor. exporter may be nil to skip docx export.
func New(cfg *config.Config, orch Orchestrator, st Store, exporter export.Exporter, log logger.Logger) Processor {
	return &implProcessor{
		cfg:          cfg,
		orchestrator: orch,
		store:        st,
		exporter:     exporter,
		logger:       log,
		newID:        uuid.NewString,
	}
}
