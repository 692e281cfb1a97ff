// Package faults holds the error markers shared by generation tasks, the
// task runner and the persistence step.
//
// Markers are wrapped with Wrap so errors.Is can classify a failure while the
// message keeps task and operation context.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrHardDependencyMissing marks a task that cannot run without data the
	// transcript does not carry (timestamps without chapters).
	ErrHardDependencyMissing = errors.New("hard dependency missing")
	// ErrGenerativeService marks network, quota or empty-response failures.
	ErrGenerativeService = errors.New("generative service failure")
	// ErrSchemaValidation marks a response that parsed but broke its contract.
	ErrSchemaValidation = errors.New("schema validation failure")
	// ErrPersistence marks a failed durable write; fatal to the run.
	ErrPersistence = errors.New("persistence failure")
	// ErrTaskPanic marks a task that panicked and was recovered by the runner.
	ErrTaskPanic = errors.New("task panic")
)

// Wrap tags err with marker and prefixes task and operation context.
func Wrap(marker error, task, operation string, err error) error {
	if marker == nil {
		marker = ErrGenerativeService
	}
	detail := buildDetail(task, operation)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether a failed task should be replaced by its
// fallback rather than omitted from the bundle.
func Recoverable(err error) bool {
	return err != nil && !errors.Is(err, ErrHardDependencyMissing)
}

func buildDetail(task, operation string) string {
	parts := make([]string, 0, 2)
	if task = strings.TrimSpace(task); task != "" {
		parts = append(parts, task)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "task failure"
	}
	return strings.Join(parts, ": ")
}
