package db

import (
	"wedding-planner-go/internal/domain/documents"
	"wedding-planner-go/internal/domain/event"
	"wedding-planner-go/internal/domain/finance"
	"wedding-planner-go/internal/domain/guests"
	"wedding-planner-go/internal/domain/notes"
	"wedding-planner-go/internal/domain/planning"
	"wedding-planner-go/internal/domain/registry"
	"wedding-planner-go/internal/domain/tasks"
	"wedding-planner-go/internal/domain/user"

	"gorm.io/gorm"
)

// Migrate keeps the schema in sync with the domain models. The unique
// indexes on budgets (event_id, category) and locations (event_id, kind)
// back the conditional upserts and must exist before the app serves writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Session{},
		&event.Event{},
		&tasks.Task{},
		&finance.Expense{},
		&finance.Deposit{},
		&finance.Budget{},
		&guests.Guest{},
		&registry.Item{},
		&planning.Supplier{},
		&planning.Location{},
		&documents.Document{},
		&notes.Note{},
	)
}
