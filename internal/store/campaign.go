package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const campaignColumns = `id, name, status, type, budget, goals, target_audience, metrics, start_date, end_date, created_at, updated_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name           string
	Status         string
	Type           string
	Budget         *float64
	Goals          *string
	TargetAudience *string
	Metrics        JSONB
	StartDate      *time.Time
	EndDate        *time.Time
}

// UpdateCampaignParams represents parameters for updating a campaign
type UpdateCampaignParams struct {
	Name           *string
	Status         *string
	Type           *string
	Budget         *float64
	Goals          *string
	TargetAudience *string
	Metrics        JSONB
	StartDate      *time.Time
	EndDate        *time.Time
}

// ListCampaignsParams represents parameters for listing campaigns with filters
type ListCampaignsParams struct {
	Status *string
	Search *string
}

// CampaignTotals aggregates campaign counts and budgets.
type CampaignTotals struct {
	Total        int     `db:"total"`
	Active       int     `db:"active"`
	TotalBudget  float64 `db:"total_budget"`
	ActiveBudget float64 `db:"active_budget"`
}

const sqlCreateCampaign = `
INSERT INTO campaigns (name, status, type, budget, goals, target_audience, metrics, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + campaignColumns

// CreateCampaign creates a new campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Name,
		params.Status,
		params.Type,
		params.Budget,
		params.Goals,
		params.TargetAudience,
		params.Metrics,
		params.StartDate,
		params.EndDate)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

// ListCampaigns retrieves campaigns newest first, optionally filtered
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.Status != nil {
		argCount++
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, *params.Status)
	}

	if params.Search != nil && *params.Search != "" {
		argCount++
		query += fmt.Sprintf(` AND name ILIKE $%d ESCAPE '\'`, argCount)
		args = append(args, containsPattern(*params.Search))
	}

	query += " ORDER BY created_at DESC"

	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, query, args...)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE($2, name),
    status = COALESCE($3, status),
    type = COALESCE($4, type),
    budget = COALESCE($5, budget),
    goals = COALESCE($6, goals),
    target_audience = COALESCE($7, target_audience),
    metrics = COALESCE($8, metrics),
    start_date = COALESCE($9, start_date),
    end_date = COALESCE($10, end_date),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaign updates a campaign
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		params.Name,
		params.Status,
		params.Type,
		params.Budget,
		params.Goals,
		params.TargetAudience,
		params.Metrics,
		params.StartDate,
		params.EndDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `DELETE FROM campaigns WHERE id = $1`

// DeleteCampaign deletes a campaign
func (s *Store) DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetCampaignTotals = `
SELECT
    COUNT(*)::int AS total,
    COUNT(*) FILTER (WHERE status = 'active')::int AS active,
    COALESCE(SUM(budget), 0)::float8 AS total_budget,
    COALESCE(SUM(budget) FILTER (WHERE status = 'active'), 0)::float8 AS active_budget
FROM campaigns
`

// GetCampaignTotals returns counts and budget sums across all campaigns.
func (s *Store) GetCampaignTotals(ctx context.Context) (CampaignTotals, error) {
	var totals CampaignTotals
	err := s.db.GetContext(ctx, &totals, sqlGetCampaignTotals)
	if err != nil {
		s.logger.Error(ctx, "failed to get campaign totals", err)
		return CampaignTotals{}, fmt.Errorf("failed to get campaign totals: %w", err)
	}
	return totals, nil
}

const sqlCountCampaignsByStatus = `SELECT status, COUNT(*)::int AS count FROM campaigns GROUP BY status`

// CountCampaignsByStatus returns one row per campaign status present.
func (s *Store) CountCampaignsByStatus(ctx context.Context) ([]StatusCount, error) {
	counts := []StatusCount{}
	err := s.db.SelectContext(ctx, &counts, sqlCountCampaignsByStatus)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaigns by status", err)
		return nil, fmt.Errorf("failed to count campaigns by status: %w", err)
	}
	return counts, nil
}
