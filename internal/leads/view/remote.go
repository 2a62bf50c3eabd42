// Package view holds the client-side lead controllers. ListView and BoardView
// each keep their own copy of the lead collection, fetched through a
// RemoteClient; neither sees the other's mutations until it reloads.
package view

import (
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// RemoteClient is the lead collection as seen by the views. Each call is
// independent; there is no batching or transaction.
type RemoteClient interface {
	// List returns every lead, newest created_at first.
	List(ctx context.Context) ([]store.Lead, error)
	// Insert creates a lead. Omitted fields take store defaults.
	Insert(ctx context.Context, fields LeadFields) (store.Lead, error)
	// Update writes only the non-nil fields.
	Update(ctx context.Context, leadID uuid.UUID, fields LeadFields) error
	Delete(ctx context.Context, leadID uuid.UUID) error
}

// LeadFields is a partial lead record. Nil fields are not sent.
type LeadFields struct {
	Name             *string         `json:"name,omitempty"`
	Email            *string         `json:"email,omitempty"`
	Phone            *string         `json:"phone,omitempty"`
	Status           *pipeline.Stage `json:"status,omitempty"`
	Source           *string         `json:"source,omitempty"`
	PropertyInterest *string         `json:"property_interest,omitempty"`
	BudgetRange      *string         `json:"budget_range,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
}

// NotificationKind separates confirmations from failures.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// Notification is a transient user-visible message.
type Notification struct {
	Kind   NotificationKind
	Title  string
	Detail string
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

func copyLeads(leads []store.Lead) []store.Lead {
	out := make([]store.Lead, len(leads))
	copy(out, leads)
	return out
}
