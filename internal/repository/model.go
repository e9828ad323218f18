package repository

import (
	"context"
	"fmt"

	"github.com/vvka-141/metsgen/internal/ingest"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// ModelResolver maps a node's model reference to the external URI of the
// model taxonomy term.
type ModelResolver struct {
	client *Client
	cache  map[string]string
}

// NewModelResolver creates a resolver. With cache enabled, each distinct
// model path is fetched at most once; otherwise every call hits the
// repository.
func NewModelResolver(client *Client, cache bool) *ModelResolver {
	r := &ModelResolver{client: client}
	if cache {
		r.cache = make(map[string]string)
	}
	return r
}

// Resolve returns the model URI for modelPath (for example
// "/taxonomy/term/24"). A non-200 response yields an error wrapping both
// metsgen.ErrModelLookup and the *StatusError; a 200 response without
// field_external_uri yields an *ingest.InputError.
func (r *ModelResolver) Resolve(ctx context.Context, modelPath string) (string, error) {
	if model, ok := r.cache[modelPath]; ok {
		return model, nil
	}

	body, err := r.client.Get(ctx, modelPath, false)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %w", metsgen.ErrModelLookup, modelPath, err)
	}

	model, err := ingest.ParseModelURI(body, r.client.URL(modelPath))
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		r.cache[modelPath] = model
	}
	return model, nil
}
