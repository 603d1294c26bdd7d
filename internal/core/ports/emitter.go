package ports

import "go.trai.ch/tldr/internal/core/domain"

// AssetEmitter registers files with the host build tool's output.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type AssetEmitter interface {
	// EmitAsset adds an asset to the build output under asset.FileName.
	EmitAsset(asset domain.Asset) error
}
