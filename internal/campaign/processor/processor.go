package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"agent-server/internal/observability"
	"agent-server/internal/store"
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCampaignNameRequired  = errors.New("campaign name is required")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrInvalidCampaignType   = errors.New("invalid campaign type")
	ErrInvalidDateRange      = errors.New("campaign end date is before start date")
	ErrNegativeBudget        = errors.New("campaign budget cannot be negative")
)

type CampaignProcessor struct {
	store  CampaignStore
	logger *observability.Logger
}

func New(store CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name           string
	Status         *string
	Type           *string
	Budget         *float64
	Goals          *string
	TargetAudience *string
	Metrics        map[string]interface{}
	StartDate      *time.Time
	EndDate        *time.Time
}

// UpdateCampaignParams is a partial update; nil fields are untouched.
type UpdateCampaignParams struct {
	Name           *string
	Status         *string
	Type           *string
	Budget         *float64
	Goals          *string
	TargetAudience *string
	Metrics        map[string]interface{}
	StartDate      *time.Time
	EndDate        *time.Time
}

// CampaignStats summarises all campaigns.
type CampaignStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	TotalBudget   float64 `json:"total_budget"`
	AverageBudget float64 `json:"average_budget"`
}

func validateDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDateRange
	}
	return nil
}

func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return store.Campaign{}, ErrCampaignNameRequired
	}

	status := store.CampaignStatusDraft
	if params.Status != nil {
		if !store.IsValidCampaignStatus(*params.Status) {
			return store.Campaign{}, ErrInvalidCampaignStatus
		}
		status = *params.Status
	}

	campaignType := store.CampaignTypeEmail
	if params.Type != nil {
		if !store.IsValidCampaignType(*params.Type) {
			return store.Campaign{}, ErrInvalidCampaignType
		}
		campaignType = *params.Type
	}

	if params.Budget != nil && *params.Budget < 0 {
		return store.Campaign{}, ErrNegativeBudget
	}
	if err := validateDates(params.StartDate, params.EndDate); err != nil {
		return store.Campaign{}, err
	}

	metrics := store.JSONB(params.Metrics)
	if metrics == nil {
		metrics = store.JSONB{}
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:           name,
		Status:         status,
		Type:           campaignType,
		Budget:         params.Budget,
		Goals:          params.Goals,
		TargetAudience: params.TargetAudience,
		Metrics:        metrics,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()})
	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListCampaigns returns campaigns newest first, optionally by status and name.
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, status, search *string) ([]store.Campaign, error) {
	if status != nil && !store.IsValidCampaignStatus(*status) {
		return nil, ErrInvalidCampaignStatus
	}

	campaigns, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{Status: status, Search: search})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return store.Campaign{}, ErrCampaignNameRequired
	}
	if params.Status != nil && !store.IsValidCampaignStatus(*params.Status) {
		return store.Campaign{}, ErrInvalidCampaignStatus
	}
	if params.Type != nil && !store.IsValidCampaignType(*params.Type) {
		return store.Campaign{}, ErrInvalidCampaignType
	}
	if params.Budget != nil && *params.Budget < 0 {
		return store.Campaign{}, ErrNegativeBudget
	}

	// a single date is checked against the stored counterpart
	if params.StartDate != nil || params.EndDate != nil {
		current, err := p.GetCampaign(ctx, campaignID)
		if err != nil {
			return store.Campaign{}, err
		}
		start, end := current.StartDate, current.EndDate
		if params.StartDate != nil {
			start = params.StartDate
		}
		if params.EndDate != nil {
			end = params.EndDate
		}
		if err := validateDates(start, end); err != nil {
			return store.Campaign{}, err
		}
	}

	campaign, err := p.store.UpdateCampaign(ctx, campaignID, store.UpdateCampaignParams{
		Name:           params.Name,
		Status:         params.Status,
		Type:           params.Type,
		Budget:         params.Budget,
		Goals:          params.Goals,
		TargetAudience: params.TargetAudience,
		Metrics:        store.JSONB(params.Metrics),
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	err := p.store.DeleteCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}

	p.logger.Info(ctx, "campaign deleted successfully")
	return nil
}

// GetStats returns campaign counts and budgets. AverageBudget is rounded to
// cents and is zero when there are no campaigns.
func (p *CampaignProcessor) GetStats(ctx context.Context) (CampaignStats, error) {
	totals, err := p.store.GetCampaignTotals(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign stats", err)
		return CampaignStats{}, err
	}

	stats := CampaignStats{
		Total:       totals.Total,
		Active:      totals.Active,
		TotalBudget: totals.TotalBudget,
	}
	if totals.Total > 0 {
		stats.AverageBudget = math.Round(totals.TotalBudget/float64(totals.Total)*100) / 100
	}
	return stats, nil
}
