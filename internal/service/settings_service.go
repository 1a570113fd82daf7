package service

import (
	"context"
	"log"

	"syncpos/internal/domain"

	"github.com/shopspring/decimal"
)

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func DefaultSettings() domain.Settings {
	return domain.Settings{
		RestaurantName: "SyncPOS Restaurant",
		TaxRatePercent: decimal.NewFromInt(18),
	}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, ok, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) error {
	if settings.TaxRatePercent.LessThan(decimal.Zero) || settings.TaxRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return &ValidationError{Fields: map[string]string{"tax_rate": "tax rate must be between 0 and 100"}}
	}
	return s.repo.SaveSettings(ctx, settings)
}

// TaxPolicy builds the pricing tax policy from the persisted settings,
// falling back to the default 18% when settings are absent or unreadable.
func (s *SettingsService) TaxPolicy(ctx context.Context) TaxPolicy {
	settings, err := s.Get(ctx)
	if err != nil {
		log.Printf("[settings] unreadable, using default tax rate: %v", err)
		return DefaultTaxPolicy()
	}
	if settings.TaxRatePercent.IsZero() {
		return DefaultTaxPolicy()
	}
	return TaxPolicyFromPercent(settings.TaxRatePercent)
}

var _ SettingsServiceInterface = (*SettingsService)(nil)
