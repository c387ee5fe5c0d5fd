package guests

import (
	"context"
	"errors"

	guestsdomain "wedding-planner-go/internal/domain/guests"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, eventID string) ([]guestsdomain.Guest, error) {
	var items []guestsdomain.Guest
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name asc").
		Find(&items).Error
	return items, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, eventID, guestID string) (*guestsdomain.Guest, error) {
	var g guestsdomain.Guest
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, guestID).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, guestsdomain.ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g *guestsdomain.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *PostgresRepository) Update(ctx context.Context, g *guestsdomain.Guest) error {
	return r.db.WithContext(ctx).
		Model(&guestsdomain.Guest{}).
		Where("id = ? AND event_id = ?", g.ID, g.EventID).
		Updates(map[string]interface{}{
			"name":           g.Name,
			"companions":     g.Companions,
			"phone":          g.Phone,
			"alt_contact":    g.AltContact,
			"status":         g.Status,
			"family":         g.Family,
			"is_godparent":   g.IsGodparent,
			"godparent_role": g.GodparentRole,
			"updated_at":     g.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, eventID, guestID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&guestsdomain.Guest{}, "event_id = ? AND id = ?", eventID, guestID)
	return result.RowsAffected > 0, result.Error
}
