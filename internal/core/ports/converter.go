package ports

import (
	"context"

	"go.trai.ch/tldr/internal/core/domain"
)

// Converter renders a diagram file to an image using an external tool.
//
//go:generate mockgen -source=converter.go -destination=mocks/mock_converter.go -package=mocks
type Converter interface {
	// Convert renders req.Source into req.OutputDir under the base name req.Name.
	// It returns the paths of the produced files; the first one is the artifact.
	Convert(ctx context.Context, req domain.RenderRequest) ([]string, error)
}
