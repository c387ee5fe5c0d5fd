package documents

import (
	"context"
	"errors"

	documentsdomain "wedding-planner-go/internal/domain/documents"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, eventID string) ([]documentsdomain.Document, error) {
	var items []documentsdomain.Document
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, eventID, documentID string) (*documentsdomain.Document, error) {
	var d documentsdomain.Document
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, documentID).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documentsdomain.ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *documentsdomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *PostgresRepository) Update(ctx context.Context, d *documentsdomain.Document) error {
	return r.db.WithContext(ctx).
		Model(&documentsdomain.Document{}).
		Where("id = ? AND event_id = ?", d.ID, d.EventID).
		Updates(map[string]interface{}{
			"type":        d.Type,
			"title":       d.Title,
			"description": d.Description,
			"link":        d.Link,
			"notes":       d.Notes,
			"updated_at":  d.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, eventID, documentID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&documentsdomain.Document{}, "event_id = ? AND id = ?", eventID, documentID)
	return result.RowsAffected > 0, result.Error
}
