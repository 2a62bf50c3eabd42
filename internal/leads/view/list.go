package view

import (
	"agent-server/internal/leads/search"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// LeadForm holds the values of the create/edit dialog.
type LeadForm struct {
	Name             string
	Email            string
	Phone            string
	Status           pipeline.Stage
	Source           string
	PropertyInterest string
	BudgetRange      string
	Notes            string
}

// Modal is the state of the create/edit dialog.
type Modal struct {
	Open      bool
	EditingID *uuid.UUID
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (f LeadForm) validate() (pipeline.Stage, error) {
	if strings.TrimSpace(f.Name) == "" {
		return "", ErrNameRequired
	}
	if strings.TrimSpace(f.Email) == "" {
		return "", ErrEmailRequired
	}
	if f.Status == "" {
		return pipeline.StageNew, nil
	}
	return pipeline.Parse(string(f.Status))
}

// insertFields sends only what the user filled in.
func (f LeadForm) insertFields(status pipeline.Stage) LeadFields {
	name, email := strings.TrimSpace(f.Name), strings.TrimSpace(f.Email)
	return LeadFields{
		Name:             &name,
		Email:            &email,
		Phone:            optional(f.Phone),
		Status:           &status,
		Source:           optional(f.Source),
		PropertyInterest: optional(f.PropertyInterest),
		BudgetRange:      optional(f.BudgetRange),
		Notes:            optional(f.Notes),
	}
}

// editFields replaces every editable field with the form's value.
func (f LeadForm) editFields(status pipeline.Stage) LeadFields {
	name, email := strings.TrimSpace(f.Name), strings.TrimSpace(f.Email)
	phone, source, interest, budget, notes := f.Phone, f.Source, f.PropertyInterest, f.BudgetRange, f.Notes
	return LeadFields{
		Name:             &name,
		Email:            &email,
		Phone:            &phone,
		Status:           &status,
		Source:           &source,
		PropertyInterest: &interest,
		BudgetRange:      &budget,
		Notes:            &notes,
	}
}

// ListView is the searchable lead table with its create/edit dialog.
type ListView struct {
	client   RemoteClient
	notifier Notifier

	mu           sync.Mutex
	leads        []store.Lead
	loading      bool
	searchTerm   string
	statusFilter *pipeline.Stage
	modal        Modal
}

func NewListView(client RemoteClient, notifier Notifier) *ListView {
	return &ListView{client: client, notifier: notifier, leads: []store.Lead{}}
}

// LoadAll replaces the collection with a fresh fetch. On failure the
// previous collection is kept.
func (v *ListView) LoadAll(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	leads, err := v.client.List(ctx)

	v.mu.Lock()
	v.loading = false
	if err == nil {
		v.leads = copyLeads(leads)
	}
	v.mu.Unlock()

	if err != nil {
		v.notifier.Notify(Notification{Kind: NotifyError, Title: "Error fetching leads", Detail: "Please try again later."})
		return err
	}
	return nil
}

// Submit creates a lead, or updates editingID when set. Validation runs
// before any remote call. On failure the dialog stays open.
func (v *ListView) Submit(ctx context.Context, form LeadForm, editingID *uuid.UUID) error {
	status, err := form.validate()
	if err != nil {
		v.notifier.Notify(Notification{Kind: NotifyError, Title: "Error saving lead", Detail: err.Error()})
		return err
	}

	var title string
	if editingID != nil {
		err = v.client.Update(ctx, *editingID, form.editFields(status))
		title = "Lead updated successfully!"
	} else {
		_, err = v.client.Insert(ctx, form.insertFields(status))
		title = "Lead created successfully!"
	}
	if err != nil {
		v.notifier.Notify(Notification{Kind: NotifyError, Title: "Error saving lead", Detail: "Please try again."})
		return err
	}

	v.notifier.Notify(Notification{Kind: NotifySuccess, Title: title})
	v.CloseModal()
	// the save already succeeded; a failed refresh is reported by LoadAll
	_ = v.LoadAll(ctx)
	return nil
}

// Remove deletes a lead and reloads. Nothing is removed locally on failure.
func (v *ListView) Remove(ctx context.Context, leadID uuid.UUID) error {
	if err := v.client.Delete(ctx, leadID); err != nil {
		v.notifier.Notify(Notification{Kind: NotifyError, Title: "Error deleting lead"})
		return err
	}
	v.notifier.Notify(Notification{Kind: NotifySuccess, Title: "Lead deleted successfully!"})
	_ = v.LoadAll(ctx)
	return nil
}

// Filtered applies the search term and status filter to the collection.
func (v *ListView) Filtered() []store.Lead {
	v.mu.Lock()
	defer v.mu.Unlock()
	return search.List(v.leads, v.searchTerm, v.statusFilter)
}

func (v *ListView) SetSearchTerm(term string) {
	v.mu.Lock()
	v.searchTerm = term
	v.mu.Unlock()
}

// SetStatusFilter narrows Filtered to one stage; nil clears it.
func (v *ListView) SetStatusFilter(status *pipeline.Stage) error {
	if status != nil && !status.Valid() {
		return pipeline.ErrInvalidStage
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if status == nil {
		v.statusFilter = nil
		return nil
	}
	st := *status
	v.statusFilter = &st
	return nil
}

// Leads returns a copy of the whole collection.
func (v *ListView) Leads() []store.Lead {
	v.mu.Lock()
	defer v.mu.Unlock()
	return copyLeads(v.leads)
}

func (v *ListView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *ListView) OpenCreate() {
	v.mu.Lock()
	v.modal = Modal{Open: true}
	v.mu.Unlock()
}

func (v *ListView) OpenEdit(leadID uuid.UUID) {
	v.mu.Lock()
	v.modal = Modal{Open: true, EditingID: &leadID}
	v.mu.Unlock()
}

func (v *ListView) CloseModal() {
	v.mu.Lock()
	v.modal = Modal{}
	v.mu.Unlock()
}

func (v *ListView) Modal() Modal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modal
}
