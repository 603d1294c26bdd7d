package ports

import "go.trai.ch/tldr/internal/core/domain"

// ImageProber reads the intrinsic dimensions of a rendered image.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type ImageProber interface {
	Dimensions(path string, format domain.Format) (domain.Dimensions, error)
}
