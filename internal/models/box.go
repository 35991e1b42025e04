package models

import (
	"time"
)

// Box is a named, categorized container owned by one user.
// Name carries a table-wide unique constraint, not a per-user one; that
// matches the upstream data model as observed, even though a per-user scope
// would be the more likely intent.
type Box struct {
	BaseModel
	UserID         uint       `gorm:"index;not null" json:"user_id"`
	Name           string     `gorm:"type:varchar(255);not null;unique" json:"name"`
	Category       Category   `gorm:"type:varchar(50);not null" json:"category"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	ImageURL       string     `gorm:"type:text" json:"image_url,omitempty"`
	LastModifiedAt *time.Time `gorm:"index" json:"last_modified_at,omitempty"`
	Items          []Item     `gorm:"foreignKey:BoxID" json:"items,omitempty"`
}

// ModifiedOrCreated resolves the ordering field for recency ranking:
// last-modified when present, creation time otherwise. The zero time means
// neither is populated.
func (b *Box) ModifiedOrCreated() time.Time {
	if b.LastModifiedAt != nil && !b.LastModifiedAt.IsZero() {
		return *b.LastModifiedAt
	}
	return b.CreatedAt
}
