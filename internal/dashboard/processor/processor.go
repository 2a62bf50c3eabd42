// Package processor computes the dashboard overview and analytics from
// store aggregates.
package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"agent-server/internal/observability"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	RecentLeadsLimit   = 5
	UpcomingTasksLimit = 4
)

type DashboardProcessor struct {
	store  DashboardStore
	logger *observability.Logger
}

func New(store DashboardStore, logger *observability.Logger) DashboardProcessor {
	return DashboardProcessor{
		store:  store,
		logger: logger,
	}
}

// Overview is the landing page summary. PipelineBudget is the summed budget
// of active campaigns.
type Overview struct {
	TotalLeads      int          `json:"total_leads"`
	ConversionRate  float64      `json:"conversion_rate"`
	ActiveCampaigns int          `json:"active_campaigns"`
	PipelineBudget  float64      `json:"pipeline_budget"`
	RecentLeads     []store.Lead `json:"recent_leads"`
	UpcomingTasks   []store.Task `json:"upcoming_tasks"`
}

type StageBreakdown struct {
	Stage      pipeline.Stage `json:"stage"`
	Title      string         `json:"title"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
}

type Analytics struct {
	TotalLeads       int                 `json:"total_leads"`
	QualifiedLeads   int                 `json:"qualified_leads"`
	ConversionRate   float64             `json:"conversion_rate"`
	ActiveCampaigns  int                 `json:"active_campaigns"`
	TotalBudget      float64             `json:"total_budget"`
	Stages           []StageBreakdown    `json:"stages"`
	CampaignStatuses []store.StatusCount `json:"campaign_statuses"`
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// percent is part/total*100 to one decimal, 0 when total is 0.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTenth(float64(part) / float64(total) * 100)
}

// stageCounts returns counts indexed by pipeline.Stages order and the total.
func stageCounts(rows []store.StageCount) ([]int, int) {
	counts := make([]int, len(pipeline.Stages()))
	total := 0
	for _, row := range rows {
		if i := row.Status.Index(); i >= 0 {
			counts[i] += row.Count
			total += row.Count
		}
	}
	return counts, total
}

func (p *DashboardProcessor) GetOverview(ctx context.Context) (Overview, error) {
	var (
		stageRows []store.StageCount
		recent    []store.Lead
		totals    store.CampaignTotals
		upcoming  []store.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stageRows, err = p.store.CountLeadsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = p.store.ListRecentLeads(gctx, RecentLeadsLimit)
		return err
	})
	g.Go(func() (err error) {
		totals, err = p.store.GetCampaignTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = p.store.ListUpcomingTasks(gctx, UpcomingTasksLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "failed to load dashboard overview", err)
		return Overview{}, err
	}

	counts, total := stageCounts(stageRows)
	won := counts[pipeline.StageClosedWon.Index()]

	return Overview{
		TotalLeads:      total,
		ConversionRate:  percent(won, total),
		ActiveCampaigns: totals.Active,
		PipelineBudget:  totals.ActiveBudget,
		RecentLeads:     nonNilLeads(recent),
		UpcomingTasks:   nonNilTasks(upcoming),
	}, nil
}

func (p *DashboardProcessor) GetAnalytics(ctx context.Context) (Analytics, error) {
	var (
		stageRows    []store.StageCount
		totals       store.CampaignTotals
		campaignRows []store.StatusCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stageRows, err = p.store.CountLeadsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		totals, err = p.store.GetCampaignTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		campaignRows, err = p.store.CountCampaignsByStatus(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "failed to load dashboard analytics", err)
		return Analytics{}, err
	}

	counts, total := stageCounts(stageRows)
	stages := pipeline.Stages()
	breakdown := make([]StageBreakdown, len(stages))
	for i, st := range stages {
		breakdown[i] = StageBreakdown{
			Stage:      st,
			Title:      st.Title(),
			Count:      counts[i],
			Percentage: percent(counts[i], total),
		}
	}

	return Analytics{
		TotalLeads:       total,
		QualifiedLeads:   counts[pipeline.StageQualified.Index()],
		ConversionRate:   percent(counts[pipeline.StageClosedWon.Index()], total),
		ActiveCampaigns:  totals.Active,
		TotalBudget:      totals.TotalBudget,
		Stages:           breakdown,
		CampaignStatuses: campaignStatusBreakdown(campaignRows),
	}, nil
}

// campaignStatusBreakdown lists every campaign status in display order,
// zero-filled.
func campaignStatusBreakdown(rows []store.StatusCount) []store.StatusCount {
	byStatus := make(map[string]int, len(rows))
	for _, row := range rows {
		byStatus[row.Status] += row.Count
	}
	out := make([]store.StatusCount, len(store.CampaignStatuses))
	for i, status := range store.CampaignStatuses {
		out[i] = store.StatusCount{Status: status, Count: byStatus[status]}
	}
	return out
}

func nonNilLeads(leads []store.Lead) []store.Lead {
	if leads == nil {
		return []store.Lead{}
	}
	return leads
}

func nonNilTasks(tasks []store.Task) []store.Task {
	if tasks == nil {
		return []store.Task{}
	}
	return tasks
}
