package view

import (
	"agent-server/internal/leads/search"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"sync"

	"github.com/google/uuid"
)

// DragResult describes a finished drag gesture. Destination is nil when the
// card was dropped outside every column.
type DragResult struct {
	LeadID      uuid.UUID
	Source      pipeline.Stage
	Destination *pipeline.Stage
}

// BoardView is the column-per-stage presentation of leads. Dragging a card
// to another column is its only mutation.
type BoardView struct {
	client   RemoteClient
	notifier Notifier

	mu         sync.Mutex
	leads      []store.Lead
	loading    bool
	searchTerm string
}

func NewBoardView(client RemoteClient, notifier Notifier) *BoardView {
	return &BoardView{client: client, notifier: notifier, leads: []store.Lead{}}
}

// LoadAll replaces the collection with a fresh fetch. On failure the
// previous collection is kept.
func (b *BoardView) LoadAll(ctx context.Context) error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	leads, err := b.client.List(ctx)

	b.mu.Lock()
	b.loading = false
	if err == nil {
		b.leads = copyLeads(leads)
	}
	b.mu.Unlock()

	if err != nil {
		b.notifier.Notify(Notification{Kind: NotifyError, Title: "Failed to load leads", Detail: err.Error()})
		return err
	}
	return nil
}

// setStatus writes status onto the lead in the local collection and reports
// whether the lead was present.
func (b *BoardView) setStatus(leadID uuid.UUID, status pipeline.Stage) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.leads {
		if b.leads[i].ID == leadID {
			b.leads[i].Status = status
			return true
		}
	}
	return false
}

// DragEnd handles a drop. Drops outside a column, onto the source column, or
// of a card no longer in the collection do nothing. Otherwise the move is
// applied locally first, then written remotely; a failed write restores the
// source column's status.
//
// Concurrent drags of the same card are not sequenced: whichever write
// resolves last decides the local status.
func (b *BoardView) DragEnd(ctx context.Context, result DragResult) error {
	if result.Destination == nil {
		return nil
	}
	dest := *result.Destination
	if dest == result.Source {
		return nil
	}
	if !dest.Valid() || !result.Source.Valid() {
		return pipeline.ErrInvalidStage
	}

	if !b.setStatus(result.LeadID, dest) {
		return nil
	}

	err := b.client.Update(ctx, result.LeadID, LeadFields{Status: &dest})
	if err != nil {
		b.setStatus(result.LeadID, result.Source)
		b.notifier.Notify(Notification{Kind: NotifyError, Title: "Could not move lead", Detail: err.Error()})
		return err
	}

	b.notifier.Notify(Notification{Kind: NotifySuccess, Title: "Lead updated", Detail: "Moved to " + dest.String()})
	return nil
}

// Columns returns the leads matching the search term, one column per stage.
func (b *BoardView) Columns() []search.Column {
	b.mu.Lock()
	defer b.mu.Unlock()
	return search.Columns(search.Board(b.leads, b.searchTerm))
}

// Filtered returns the leads matching the search term in collection order.
func (b *BoardView) Filtered() []store.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()
	return search.Board(b.leads, b.searchTerm)
}

func (b *BoardView) SetSearchTerm(term string) {
	b.mu.Lock()
	b.searchTerm = term
	b.mu.Unlock()
}

// Leads returns a copy of the whole collection.
func (b *BoardView) Leads() []store.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyLeads(b.leads)
}

func (b *BoardView) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}
