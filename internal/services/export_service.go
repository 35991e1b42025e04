package services

import (
	"fmt"
	"strings"

	"inventori/internal/mapper"
	"inventori/internal/models"
)

// ExportService renders a box and its contents as the plain-text manifest
// that gets encoded into a QR code. The payload is self-contained so a scan
// works offline; QR rasterization happens on the client.
type ExportService interface {
	ExportBox(ownerID, boxID uint) (string, error)
}

type exportServiceImpl struct {
	boxService BoxService
}

func NewExportService(boxService BoxService) ExportService {
	return &exportServiceImpl{boxService: boxService}
}

func (s *exportServiceImpl) ExportBox(ownerID, boxID uint) (string, error) {
	box, err := s.boxService.GetBoxWithItems(ownerID, boxID)
	if err != nil {
		return "", err
	}
	return BuildBoxManifest(box, box.Items), nil
}

const manifestRule = "=============================="

func BuildBoxManifest(box *models.Box, items []models.Item) string {
	var b strings.Builder

	name := box.Name
	if name == "" {
		name = "Unnamed"
	}
	category := string(box.Category)
	if category == "" {
		category = "N/A"
	}
	description := box.Description
	if description == "" {
		description = "No description"
	}

	b.WriteString(manifestRule + "\n")
	b.WriteString(name + "\n")
	fmt.Fprintf(&b, "\nCategory: %s %s\n", mapper.EmojiForCategory(string(box.Category)), category)
	fmt.Fprintf(&b, "Description: %s\n", description)
	b.WriteString(manifestRule + "\n\nItems:")

	if len(items) == 0 {
		b.WriteString("\n(No items in this box)")
		return b.String()
	}

	for i, item := range items {
		title := item.Title
		if title == "" {
			title = "Untitled Item"
		}
		fmt.Fprintf(&b, "\n%d. %s", i+1, title)
		if item.Description != "" {
			fmt.Fprintf(&b, "\n   Description: %s", item.Description)
		}
		fmt.Fprintf(&b, "\n   Quantity: %d", item.Quantity)
		if item.ImageURL != "" {
			fmt.Fprintf(&b, "\n Image: %s", item.ImageURL)
		}
	}
	return b.String()
}
