package dto

type DashboardGetDTO struct {
	TotalBoxes       int          `json:"total_boxes"`
	MostUsedCategory *string      `json:"most_used_category"`
	RecentBoxes      []BoxViewDTO `json:"recent_boxes"`
}
