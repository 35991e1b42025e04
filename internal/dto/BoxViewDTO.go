package dto

type BoxViewDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryEmoji string `json:"category_emoji"`
	FormattedDate string `json:"formatted_last_modified"`
}
