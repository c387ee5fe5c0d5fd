package notes

import (
	"context"
	"errors"

	notesdomain "wedding-planner-go/internal/domain/notes"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, eventID string) ([]notesdomain.Note, error) {
	var items []notesdomain.Note
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, eventID, noteID string) (*notesdomain.Note, error) {
	var n notesdomain.Note
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, noteID).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notesdomain.ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, n *notesdomain.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *PostgresRepository) Update(ctx context.Context, n *notesdomain.Note) error {
	return r.db.WithContext(ctx).
		Model(&notesdomain.Note{}).
		Where("id = ? AND event_id = ?", n.ID, n.EventID).
		Updates(map[string]interface{}{
			"title":      n.Title,
			"content":    n.Content,
			"type":       n.Type,
			"updated_at": n.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, eventID, noteID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&notesdomain.Note{}, "event_id = ? AND id = ?", eventID, noteID)
	return result.RowsAffected > 0, result.Error
}
