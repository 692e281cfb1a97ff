package watcher

import "context"

// Watcher monitors the inbox for transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one transcript file.
type EventHandler func(ctx context.Context, filePath string) error
