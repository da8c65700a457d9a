package ports

import "go.trai.ch/xform/internal/core/domain"

// Subsystem is notified after properties of the document change.
//
//go:generate mockgen -source=subsystem.go -destination=mocks/mock_subsystem.go -package=mocks
type Subsystem interface {
	// OnPropertyChanged receives one batch of changed properties.
	// Implementations have exclusive access to doc for the duration of the call.
	OnPropertyChanged(doc Document, refs []domain.PropRef)
}
