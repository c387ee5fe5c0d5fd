package planning

import "context"

type Repository interface {
	ListSuppliers(ctx context.Context, eventID string) ([]Supplier, error)
	GetSupplierByID(ctx context.Context, eventID, supplierID string) (*Supplier, error)
	CreateSupplier(ctx context.Context, s *Supplier) error
	UpdateSupplier(ctx context.Context, s *Supplier) error
	DeleteSupplier(ctx context.Context, eventID, supplierID string) (bool, error)

	ListLocations(ctx context.Context, eventID string) ([]Location, error)
	// UpsertLocation creates or replaces the event's venue for a kind as a
	// single conditional write keyed on (event_id, kind).
	UpsertLocation(ctx context.Context, l *Location) error
	DeleteLocation(ctx context.Context, eventID, locationID string) (bool, error)
}
