package view

import (
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fakeRemote is an in-memory RemoteClient shared by several views, the way
// two screens share one hosted table.
type fakeRemote struct {
	mu      sync.Mutex
	leads   []store.Lead
	clock   time.Time
	updates []LeadFields
	lists   int
	inserts int
	deletes int

	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	// listGate and updateHook, when set, run inside the call before it returns.
	listGate   chan struct{}
	updateHook func(call int, id uuid.UUID, fields LeadFields) error
}

func newFakeRemote(seed ...store.Lead) *fakeRemote {
	f := &fakeRemote{clock: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	for _, l := range seed {
		f.add(l)
	}
	return f
}

func (f *fakeRemote) add(l store.Lead) store.Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = pipeline.StageNew
	}
	f.clock = f.clock.Add(time.Minute)
	l.CreatedAt = f.clock
	f.leads = append([]store.Lead{l}, f.leads...)
	return l
}

func (f *fakeRemote) get(id uuid.UUID) (store.Lead, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.leads {
		if l.ID == id {
			return l, true
		}
	}
	return store.Lead{}, false
}

func (f *fakeRemote) List(ctx context.Context) ([]store.Lead, error) {
	if f.listGate != nil {
		<-f.listGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return copyLeads(f.leads), nil
}

func (f *fakeRemote) Insert(ctx context.Context, fields LeadFields) (store.Lead, error) {
	f.mu.Lock()
	f.inserts++
	err := f.insertErr
	f.mu.Unlock()
	if err != nil {
		return store.Lead{}, err
	}
	l := store.Lead{Name: fields.Name, Phone: fields.Phone, Source: fields.Source, Notes: fields.Notes,
		PropertyInterest: fields.PropertyInterest, BudgetRange: fields.BudgetRange}
	if fields.Email != nil {
		l.Email = *fields.Email
	}
	if fields.Status != nil {
		l.Status = *fields.Status
	}
	return f.add(l), nil
}

func (f *fakeRemote) Update(ctx context.Context, id uuid.UUID, fields LeadFields) error {
	f.mu.Lock()
	call := len(f.updates)
	f.updates = append(f.updates, fields)
	err := f.updateErr
	hook := f.updateHook
	f.mu.Unlock()

	if hook != nil {
		err = hook(call, id, fields)
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.leads {
		if f.leads[i].ID != id {
			continue
		}
		l := &f.leads[i]
		if fields.Name != nil {
			l.Name = fields.Name
		}
		if fields.Email != nil {
			l.Email = *fields.Email
		}
		if fields.Phone != nil {
			l.Phone = fields.Phone
		}
		if fields.Status != nil {
			l.Status = *fields.Status
		}
		if fields.Source != nil {
			l.Source = fields.Source
		}
		if fields.PropertyInterest != nil {
			l.PropertyInterest = fields.PropertyInterest
		}
		if fields.BudgetRange != nil {
			l.BudgetRange = fields.BudgetRange
		}
		if fields.Notes != nil {
			l.Notes = fields.Notes
		}
	}
	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	out := f.leads[:0]
	for _, l := range f.leads {
		if l.ID != id {
			out = append(out, l)
		}
	}
	f.leads = out
	return nil
}

func (f *fakeRemote) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

// recorder collects notifications.
type recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

func (r *recorder) byKind(kind NotificationKind) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Notification
	for _, n := range r.items {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func ptr(s string) *string { return &s }

func stagePtr(s pipeline.Stage) *pipeline.Stage { return &s }

func findLead(leads []store.Lead, id uuid.UUID) (store.Lead, bool) {
	for _, l := range leads {
		if l.ID == id {
			return l, true
		}
	}
	return store.Lead{}, false
}
