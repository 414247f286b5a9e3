// Package normalizer validates the raw dataset and turns it into a directory snapshot.
package normalizer

import (
	"encoding/json"
	"fmt"
	"time"

	"chefguide/internal/directory"
	"chefguide/internal/models"
	"chefguide/pkg/metadata"
)

// Processor validates, normalizes and aggregates a dataset.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	now         func() time.Time
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
		now:         time.Now,
	}
}

// Process builds a directory snapshot from ds. source is recorded as-is.
func (p *Processor) Process(ds *models.Dataset, source string) (*models.Directory, error) {
	// 1. Validate the input data
	if err := p.validator.Validate(ds); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// 2. Normalize
	chefs := p.transformer.Transform(ds)

	// 3. Fingerprint the normalized form so equal content gets an equal version
	encoded, err := json.Marshal(chefs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chefs: %w", err)
	}

	return &models.Directory{
		LoadedAt:    p.now().UTC(),
		Fingerprint: metadata.Fingerprint(encoded),
		Source:      source,
		Chefs:       chefs,
		Stats:       directory.Aggregate(chefs),
		Breakdown:   directory.AggregateBy(chefs),
	}, nil
}

// Validator returns the processor's dataset validator.
func (p *Processor) Validator() *Validator {
	return p.validator
}
