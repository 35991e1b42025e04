package services

import (
	"sync"

	"github.com/sirupsen/logrus"

	"inventori/internal/models"
	"inventori/internal/repository"
)

// RecentBoxLimit caps the dashboard's recent-boxes list.
const RecentBoxLimit = 5

// BoxStats is the aggregate the dashboard shows above the recent list.
// MostUsedCategory is empty when the user has no boxes.
type BoxStats struct {
	TotalBoxes       int
	MostUsedCategory models.Category
}

type DashboardService interface {
	GetDashboard(ownerID uint) (BoxStats, []models.Box)
}

type dashboardServiceImpl struct {
	boxRepo    repository.BoxRepository
	logService LogService
}

func NewDashboardService(boxRepo repository.BoxRepository, logService LogService) DashboardService {
	return &dashboardServiceImpl{boxRepo: boxRepo, logService: logService}
}

// ComputeBoxStats counts boxes and picks the most frequent category in a
// single linear scan. On a tie the first category to reach the winning tally
// wins, so the result depends on input order but is deterministic for a
// given ordering. Missing or unrecognized categories count as Others.
func ComputeBoxStats(boxes []models.Box) BoxStats {
	stats := BoxStats{TotalBoxes: len(boxes)}
	if len(boxes) == 0 {
		return stats
	}
	counts := make(map[models.Category]int, len(models.Categories))
	best := 0
	for _, box := range boxes {
		cat := models.NormalizeCategory(string(box.Category))
		counts[cat]++
		if counts[cat] > best {
			best = counts[cat]
			stats.MostUsedCategory = cat
		}
	}
	return stats
}

// GetDashboard issues the two independent fetches concurrently and joins
// them. A failed fetch is logged and its half of the dashboard degrades to
// empty rather than failing the whole refresh; the next refresh retries.
func (s *dashboardServiceImpl) GetDashboard(ownerID uint) (BoxStats, []models.Box) {
	var (
		wg     sync.WaitGroup
		stats  BoxStats
		recent []models.Box
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		boxes, err := s.boxRepo.FindByOwner(ownerID)
		if err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("Failed to fetch boxes for dashboard stats")
			return
		}
		stats = ComputeBoxStats(boxes)
	}()
	go func() {
		defer wg.Done()
		boxes, err := s.boxRepo.FindRecentByOwner(ownerID, RecentBoxLimit)
		if err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"owner_id": ownerID,
				"error":    err.Error(),
			}).Error("Failed to fetch recent boxes for dashboard")
			return
		}
		recent = boxes
	}()
	wg.Wait()

	return stats, recent
}
