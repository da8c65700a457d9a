package ports

import "go.trai.ch/xform/internal/core/domain"

// DocumentLoader defines the interface for loading a scene from disk.
//
//go:generate mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load reads and validates the scene file at path.
	Load(path string) (*domain.Scene, error)
}
