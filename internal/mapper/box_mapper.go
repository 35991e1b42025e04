// Package mapper shapes model records into the display-ready payloads the
// client renders directly: emoji-per-category lookup, short date formatting,
// and the dashboard view records.
package mapper

import (
	"time"

	"inventori/internal/dto"
	"inventori/internal/models"
)

var categoryEmojis = map[models.Category]string{
	models.CategoryFurniture:   "🛋️",
	models.CategoryDevices:     "💻",
	models.CategoryAppliances:  "🧊",
	models.CategoryPapers:      "📄",
	models.CategoryPerishables: "🍋",
	models.CategoryOthers:      "📦",
}

// EmojiForCategory falls back to the Others glyph for anything unmapped.
func EmojiForCategory(category string) string {
	if emoji, ok := categoryEmojis[models.Category(category)]; ok {
		return emoji
	}
	return categoryEmojis[models.CategoryOthers]
}

// FormatBoxDate renders the short "MMM D, YYYY" form, or "Unknown" when no
// usable timestamp exists.
func FormatBoxDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("Jan 2, 2006")
}

func ToBoxViewDTO(box *models.Box) dto.BoxViewDTO {
	return dto.BoxViewDTO{
		ID:            box.ID,
		Name:          box.Name,
		CategoryEmoji: EmojiForCategory(string(box.Category)),
		Category:      string(models.NormalizeCategory(string(box.Category))),
		FormattedDate: FormatBoxDate(box.ModifiedOrCreated()),
	}
}

func ToBoxViewDTOs(boxes []models.Box) []dto.BoxViewDTO {
	views := make([]dto.BoxViewDTO, 0, len(boxes))
	for i := range boxes {
		views = append(views, ToBoxViewDTO(&boxes[i]))
	}
	return views
}

func ToDashboardDTO(totalBoxes int, mostUsedCategory models.Category, recent []models.Box) dto.DashboardGetDTO {
	d := dto.DashboardGetDTO{
		TotalBoxes:  totalBoxes,
		RecentBoxes: ToBoxViewDTOs(recent),
	}
	if mostUsedCategory != "" {
		category := string(mostUsedCategory)
		d.MostUsedCategory = &category
	}
	return d
}
