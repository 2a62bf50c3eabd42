package processor

import (
	"agent-server/internal/store"
	"context"
)

// DashboardStore defines the aggregate reads required by DashboardProcessor
type DashboardStore interface {
	CountLeadsByStatus(ctx context.Context) ([]store.StageCount, error)
	ListRecentLeads(ctx context.Context, limit int) ([]store.Lead, error)
	GetCampaignTotals(ctx context.Context) (store.CampaignTotals, error)
	CountCampaignsByStatus(ctx context.Context) ([]store.StatusCount, error)
	ListUpcomingTasks(ctx context.Context, limit int) ([]store.Task, error)
}
