package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"inventori/internal/config"
	"inventori/internal/repository"
)

// Janitor purges soft-deleted boxes and items past the retention window,
// together with their stored images. Runs on a cron schedule and can be
// forced through the admin endpoint.
type Janitor struct {
	boxRepo       repository.BoxRepository
	itemRepo      repository.ItemRepository
	imageService  ImageService
	logService    LogService
	configuration *config.Configuration
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	imageService ImageService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		boxRepo:       boxRepo,
		itemRepo:      itemRepo,
		imageService:  imageService,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.clean()
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	schedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(schedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.clean()
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to schedule cleaning job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) Stop() {
	j.cron.Stop()
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) clean() {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -j.configuration.Server.CleanConfig.RetentionDays)
	log := j.logService.Log

	items, err := j.itemRepo.FindDeletedBefore(cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("Janitor failed to list deleted items")
	}
	for i := range items {
		item := &items[i]
		if err := j.imageService.DeleteByURL(ctx, item.ImageURL); err != nil {
			log.WithFields(logrus.Fields{
				"item_id": item.ID,
				"error":   err.Error(),
			}).Warn("Janitor could not remove item image")
		}
		if err := j.itemRepo.HardDelete(item); err != nil {
			log.WithFields(logrus.Fields{
				"item_id": item.ID,
				"error":   err.Error(),
			}).Error("Janitor failed to purge item")
		}
	}

	boxes, err := j.boxRepo.FindDeletedBefore(cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("Janitor failed to list deleted boxes")
	}
	for i := range boxes {
		box := &boxes[i]
		if err := j.imageService.DeleteByURL(ctx, box.ImageURL); err != nil {
			log.WithFields(logrus.Fields{
				"box_id": box.ID,
				"error":  err.Error(),
			}).Warn("Janitor could not remove box image")
		}
		if err := j.boxRepo.HardDelete(box); err != nil {
			log.WithFields(logrus.Fields{
				"box_id": box.ID,
				"error":  err.Error(),
			}).Error("Janitor failed to purge box")
		}
	}

	log.WithFields(logrus.Fields{
		"job":   "clean",
		"items": len(items),
		"boxes": len(boxes),
	}).Info("Janitor clean cycle finished")
}
