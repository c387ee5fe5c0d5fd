package registry

import (
	"context"
	"errors"

	registrydomain "wedding-planner-go/internal/domain/registry"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, eventID string) ([]registrydomain.Item, error) {
	var items []registrydomain.Item
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, eventID, itemID string) (*registrydomain.Item, error) {
	var i registrydomain.Item
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, itemID).
		First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registrydomain.ErrItemNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *PostgresRepository) Create(ctx context.Context, i *registrydomain.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *PostgresRepository) Update(ctx context.Context, i *registrydomain.Item) error {
	return r.db.WithContext(ctx).
		Model(&registrydomain.Item{}).
		Where("id = ? AND event_id = ?", i.ID, i.EventID).
		Updates(map[string]interface{}{
			"name":            i.Name,
			"category":        i.Category,
			"estimated_price": i.EstimatedPrice,
			"store":           i.Store,
			"link":            i.Link,
			"status":          i.Status,
			"updated_at":      i.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, eventID, itemID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&registrydomain.Item{}, "event_id = ? AND id = ?", eventID, itemID)
	return result.RowsAffected > 0, result.Error
}
