// Package ai wraps the external text/image generation API used to draft
// product catalogs. One API call covers a whole batch; there is no retry,
// caching or rate limiting beyond what the client library does itself.
package ai

import (
	"context"
	"fmt"
)

// ProductDraft is one generated product description, not yet persisted.
type ProductDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url,omitempty"`
}

// GenerateRequest asks for Count product drafts in a category with unit
// prices inside [MinPriceCents, MaxPriceCents].
type GenerateRequest struct {
	Category      string
	Count         int
	MinPriceCents int64
	MaxPriceCents int64
}

// Generator produces product drafts from a single upstream call.
type Generator interface {
	GenerateProducts(ctx context.Context, req GenerateRequest) ([]ProductDraft, error)
}

// GenerationError wraps any upstream or parse failure. Callers must not
// persist anything from a batch whose generation failed.
type GenerationError struct {
	Stage string // "request", "response", "parse"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("product generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
