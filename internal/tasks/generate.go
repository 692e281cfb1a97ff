package tasks

import (
	"context"

	"github.com/nguyentantai21042004/episode-flow/internal/content"
	"github.com/nguyentantai21042004/episode-flow/internal/faults"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
)

// generate calls the generator, decodes the reply into T and checks it
// against T's output contract.
func generate[T any](ctx context.Context, gen generator.Generator, req generator.Request) (T, error) {
	var out T
	raw, err := gen.GenerateJSON(ctx, req)
	if err != nil {
		return out, faults.Wrap(faults.ErrGenerativeService, req.Name, "generate", err)
	}
	if err := generator.DecodeJSON(raw, &out); err != nil {
		var zero T
		return zero, faults.Wrap(faults.ErrGenerativeService, req.Name, "parse response", err)
	}
	if err := content.Validate(out); err != nil {
		var zero T
		return zero, faults.Wrap(faults.ErrSchemaValidation, req.Name, "validate", err)
	}
	return out, nil
}
