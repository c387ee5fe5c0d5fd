package planning

import (
	"context"
	"errors"

	planningdomain "wedding-planner-go/internal/domain/planning"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListSuppliers(ctx context.Context, eventID string) ([]planningdomain.Supplier, error) {
	var items []planningdomain.Supplier
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetSupplierByID(ctx context.Context, eventID, supplierID string) (*planningdomain.Supplier, error) {
	var s planningdomain.Supplier
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, supplierID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, planningdomain.ErrSupplierNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) CreateSupplier(ctx context.Context, s *planningdomain.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PostgresRepository) UpdateSupplier(ctx context.Context, s *planningdomain.Supplier) error {
	return r.db.WithContext(ctx).
		Model(&planningdomain.Supplier{}).
		Where("id = ? AND event_id = ?", s.ID, s.EventID).
		Updates(map[string]interface{}{
			"type":           s.Type,
			"name":           s.Name,
			"contact_name":   s.ContactName,
			"phone":          s.Phone,
			"email":          s.Email,
			"agreed_value":   s.AgreedValue,
			"payment_status": s.PaymentStatus,
			"notes":          s.Notes,
			"updated_at":     s.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteSupplier(ctx context.Context, eventID, supplierID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&planningdomain.Supplier{}, "event_id = ? AND id = ?", eventID, supplierID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListLocations(ctx context.Context, eventID string) ([]planningdomain.Location, error) {
	var items []planningdomain.Location
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("kind asc").
		Find(&items).Error
	return items, err
}

// UpsertLocation relies on the (event_id, kind) unique index; concurrent
// saves of the same venue kind converge on one row.
func (r *PostgresRepository) UpsertLocation(ctx context.Context, l *planningdomain.Location) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "address", "time", "maps_link", "updated_at"}),
		}).
		Create(l).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("event_id = ? AND kind = ?", l.EventID, l.Kind).
		First(l).Error
}

func (r *PostgresRepository) DeleteLocation(ctx context.Context, eventID, locationID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&planningdomain.Location{}, "event_id = ? AND id = ?", eventID, locationID)
	return result.RowsAffected > 0, result.Error
}
