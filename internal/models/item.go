package models

// Item lives under exactly one Box. Title is unique within its box.
type Item struct {
	BaseModel
	BoxID       uint   `gorm:"index;not null" json:"box_id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Quantity    int    `gorm:"not null;default:1" json:"quantity"`
	ImageURL    string `gorm:"type:text" json:"image_url,omitempty"`
}
