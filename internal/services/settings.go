package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/utils"
)

const (
	settingsCacheSize = 500
	settingsCacheTTL  = time.Minute
)

// SettingsService resolves the per-shop posting policy. Unknown shops
// fall back to the process-wide defaults, so the widget keeps working
// for shops installed before the settings table existed.
type SettingsService struct {
	store    storage.Storage
	cache    *utils.TTLCache
	defaults models.Settings
	logger   *zap.Logger
}

func NewSettingsService(store storage.Storage, defaults models.Settings, logger *zap.Logger) (*SettingsService, error) {
	cache, err := utils.NewTTLCache(settingsCacheSize)
	if err != nil {
		return nil, err
	}
	return &SettingsService{
		store:    store,
		cache:    cache,
		defaults: defaults,
		logger:   logger,
	}, nil
}

// Get returns the settings for shop, from cache when fresh.
func (s *SettingsService) Get(ctx context.Context, shop string) (models.Settings, error) {
	if cached := s.cache.Get(shop); cached != nil {
		if settings, ok := cached.(models.Settings); ok {
			return settings, nil
		}
	}

	record, err := s.store.GetShop(ctx, shop)
	if errors.Is(err, storage.ErrNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		return s.defaults, err
	}

	settings := record.Settings()
	s.cache.Set(shop, settings, settingsCacheTTL)
	return settings, nil
}

// Save upserts the shop record and drops the cached entry.
func (s *SettingsService) Save(ctx context.Context, shop string, settings models.Settings) error {
	record, err := s.store.GetShop(ctx, shop)
	if errors.Is(err, storage.ErrNotFound) {
		record = &models.Shop{Domain: shop}
	} else if err != nil {
		return err
	}

	record.AllowAnonymous = settings.AllowAnonymous
	record.AutoApprove = settings.AutoApprove
	record.EditWindowMinutes = settings.EditWindowMinutes
	if err := s.store.SaveShop(ctx, record); err != nil {
		return err
	}

	s.cache.Delete(shop)
	s.logger.Info("shop settings updated",
		zap.String("shop", shop),
		zap.Bool("allow_anonymous", settings.AllowAnonymous),
		zap.Bool("auto_approve", settings.AutoApprove),
	)
	return nil
}
