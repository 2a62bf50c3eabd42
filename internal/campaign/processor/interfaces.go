package processor

import (
	"agent-server/internal/store"
	"context"

	"github.com/google/uuid"
)

type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error
	GetCampaignTotals(ctx context.Context) (store.CampaignTotals, error)
}
