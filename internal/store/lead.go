package store

import (
	"agent-server/internal/pipeline"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const leadColumns = `id, name, first_name, last_name, email, phone, status, source, property_interest, property_type, budget_range, notes, ai_score, created_at, updated_at`

// CreateLeadParams represents parameters for creating a lead
type CreateLeadParams struct {
	Name             *string
	FirstName        *string
	LastName         *string
	Email            string
	Phone            *string
	Status           pipeline.Stage
	Source           *string
	PropertyInterest *string
	PropertyType     *string
	BudgetRange      *string
	Notes            *string
	AIScore          *float64
}

// UpdateLeadParams is a partial update; nil fields are left untouched.
type UpdateLeadParams struct {
	Name             *string
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Status           *pipeline.Stage
	Source           *string
	PropertyInterest *string
	PropertyType     *string
	BudgetRange      *string
	Notes            *string
	AIScore          *float64
}

// ListLeadsParams filters ListLeads. Search matches name or email.
type ListLeadsParams struct {
	Status *pipeline.Stage
	Search *string
}

const sqlCreateLead = `
INSERT INTO leads (name, first_name, last_name, email, phone, status, source, property_interest, property_type, budget_range, notes, ai_score)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + leadColumns

// CreateLead inserts a lead. An empty status falls back to the column default.
func (s *Store) CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	status := params.Status
	if status == "" {
		status = pipeline.StageNew
	}

	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlCreateLead,
		params.Name,
		params.FirstName,
		params.LastName,
		params.Email,
		params.Phone,
		status,
		params.Source,
		params.PropertyInterest,
		params.PropertyType,
		params.BudgetRange,
		params.Notes,
		params.AIScore)
	if err != nil {
		s.logger.Error(ctx, "failed to create lead", err)
		return Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

const sqlGetLeadByID = `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

// GetLeadByID retrieves a lead by ID
func (s *Store) GetLeadByID(ctx context.Context, leadID uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByID, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get lead by id", err)
		return Lead{}, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return lead, nil
}

// ListLeads returns leads newest first.
func (s *Store) ListLeads(ctx context.Context, params ListLeadsParams) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.Status != nil {
		argCount++
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, *params.Status)
	}

	if params.Search != nil && *params.Search != "" {
		argCount++
		query += fmt.Sprintf(` AND (COALESCE(name, '') ILIKE $%d ESCAPE '\'
			OR (COALESCE(first_name, '') || ' ' || COALESCE(last_name, '')) ILIKE $%d ESCAPE '\'
			OR email ILIKE $%d ESCAPE '\')`, argCount, argCount, argCount)
		args = append(args, containsPattern(*params.Search))
	}

	query += " ORDER BY created_at DESC"

	leads := []Lead{}
	err := s.db.SelectContext(ctx, &leads, query, args...)
	if err != nil {
		s.logger.Error(ctx, "failed to list leads", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

const sqlUpdateLead = `
UPDATE leads
SET name = COALESCE($2, name),
    first_name = COALESCE($3, first_name),
    last_name = COALESCE($4, last_name),
    email = COALESCE($5, email),
    phone = COALESCE($6, phone),
    status = COALESCE($7, status),
    source = COALESCE($8, source),
    property_interest = COALESCE($9, property_interest),
    property_type = COALESCE($10, property_type),
    budget_range = COALESCE($11, budget_range),
    notes = COALESCE($12, notes),
    ai_score = COALESCE($13, ai_score),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + leadColumns

// UpdateLead applies a partial update and returns the stored record.
func (s *Store) UpdateLead(ctx context.Context, leadID uuid.UUID, params UpdateLeadParams) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlUpdateLead,
		leadID,
		params.Name,
		params.FirstName,
		params.LastName,
		params.Email,
		params.Phone,
		params.Status,
		params.Source,
		params.PropertyInterest,
		params.PropertyType,
		params.BudgetRange,
		params.Notes,
		params.AIScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update lead", err)
		return Lead{}, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

const sqlUpdateLeadStatus = `
UPDATE leads
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + leadColumns

// UpdateLeadStatus changes only the status column.
func (s *Store) UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status pipeline.Stage) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlUpdateLeadStatus, leadID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update lead status", err)
		return Lead{}, fmt.Errorf("failed to update lead status: %w", err)
	}
	return lead, nil
}

const sqlDeleteLead = `DELETE FROM leads WHERE id = $1`

// DeleteLead removes a lead permanently.
func (s *Store) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteLead, leadID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete lead", err)
		return fmt.Errorf("failed to delete lead: %w", err)
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

const sqlCountLeadsByStatus = `SELECT status, COUNT(*)::int AS count FROM leads GROUP BY status`

// CountLeadsByStatus returns one row per stage present in the table.
func (s *Store) CountLeadsByStatus(ctx context.Context) ([]StageCount, error) {
	counts := []StageCount{}
	err := s.db.SelectContext(ctx, &counts, sqlCountLeadsByStatus)
	if err != nil {
		s.logger.Error(ctx, "failed to count leads by status", err)
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}
	return counts, nil
}

const sqlListRecentLeads = `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1`

// ListRecentLeads returns the newest limit leads.
func (s *Store) ListRecentLeads(ctx context.Context, limit int) ([]Lead, error) {
	leads := []Lead{}
	err := s.db.SelectContext(ctx, &leads, sqlListRecentLeads, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list recent leads", err)
		return nil, fmt.Errorf("failed to list recent leads: %w", err)
	}
	return leads, nil
}
