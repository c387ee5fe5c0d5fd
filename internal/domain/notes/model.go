package notes

import "time"

type Type string

const (
	TypeGeneral    Type = "general"
	TypeDecoration Type = "decoration"
	TypeMusic      Type = "music"
	TypeLetter     Type = "letter"
	TypeVows       Type = "vows"
	TypePlaylist   Type = "playlist"
)

type Note struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	EventID   string    `gorm:"type:uuid;index;not null"`
	Title     *string   `gorm:"type:text"`
	Content   string    `gorm:"type:text;not null"`
	Type      Type      `gorm:"size:12;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	EventID string
	Title   *string
	Content string
	Type    Type
}

type UpdateInput struct {
	ID      string
	EventID string
	Title   *string
	Content string
	Type    Type
}
