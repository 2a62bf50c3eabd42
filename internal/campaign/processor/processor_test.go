package processor

import (
	"agent-server/internal/observability"
	"agent-server/internal/store"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func setup(t *testing.T) (*MockCampaignStore, CampaignProcessor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := NewMockCampaignStore(ctrl)
	return mockStore, New(mockStore, observability.NewLogger())
}

func TestCreateCampaign_Defaults(t *testing.T) {
	mockStore, processor := setup(t)

	mockStore.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreateCampaignParams) (store.Campaign, error) {
			if params.Status != store.CampaignStatusDraft {
				t.Errorf("expected status draft, got %s", params.Status)
			}
			if params.Type != store.CampaignTypeEmail {
				t.Errorf("expected type email, got %s", params.Type)
			}
			if params.Name != "Spring Open House" {
				t.Errorf("expected trimmed name, got %q", params.Name)
			}
			if params.Metrics == nil {
				t.Error("expected empty metrics object, got nil")
			}
			return store.Campaign{ID: uuid.New(), Name: params.Name, Status: params.Status, Type: params.Type}, nil
		})

	_, err := processor.CreateCampaign(context.Background(), CreateCampaignParams{Name: "  Spring Open House "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCreateCampaign_Validation(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		params  CreateCampaignParams
		wantErr error
	}{
		{name: "blank name", params: CreateCampaignParams{Name: " "}, wantErr: ErrCampaignNameRequired},
		{name: "bad status", params: CreateCampaignParams{Name: "x", Status: strPtr("live")}, wantErr: ErrInvalidCampaignStatus},
		{name: "bad type", params: CreateCampaignParams{Name: "x", Type: strPtr("radio")}, wantErr: ErrInvalidCampaignType},
		{name: "negative budget", params: CreateCampaignParams{Name: "x", Budget: floatPtr(-1)}, wantErr: ErrNegativeBudget},
		{name: "end before start", params: CreateCampaignParams{Name: "x", StartDate: &start, EndDate: &end}, wantErr: ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, processor := setup(t)
			_, err := processor.CreateCampaign(context.Background(), tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetCampaign_NotFound(t *testing.T) {
	mockStore, processor := setup(t)
	id := uuid.New()

	mockStore.EXPECT().GetCampaignByID(gomock.Any(), id).Return(store.Campaign{}, store.ErrNotFound)

	_, err := processor.GetCampaign(context.Background(), id)
	if !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestListCampaigns_RejectsUnknownStatus(t *testing.T) {
	_, processor := setup(t)

	_, err := processor.ListCampaigns(context.Background(), strPtr("archived"), nil)
	if !errors.Is(err, ErrInvalidCampaignStatus) {
		t.Errorf("expected ErrInvalidCampaignStatus, got %v", err)
	}
}

func TestUpdateCampaign_EndDateCheckedAgainstStoredStart(t *testing.T) {
	mockStore, processor := setup(t)
	id := uuid.New()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)

	mockStore.EXPECT().GetCampaignByID(gomock.Any(), id).Return(store.Campaign{ID: id, StartDate: &start}, nil)

	_, err := processor.UpdateCampaign(context.Background(), id, UpdateCampaignParams{EndDate: &end})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestUpdateCampaign_PartialSkipsLookup(t *testing.T) {
	mockStore, processor := setup(t)
	id := uuid.New()

	mockStore.EXPECT().UpdateCampaign(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error) {
			if params.Status == nil || *params.Status != store.CampaignStatusActive {
				t.Errorf("expected status active, got %v", params.Status)
			}
			if params.Name != nil || params.Metrics != nil {
				t.Error("expected untouched fields to stay nil")
			}
			return store.Campaign{ID: id, Status: *params.Status}, nil
		})

	_, err := processor.UpdateCampaign(context.Background(), id, UpdateCampaignParams{Status: strPtr(store.CampaignStatusActive)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestUpdateCampaign_NotFound(t *testing.T) {
	mockStore, processor := setup(t)
	id := uuid.New()

	mockStore.EXPECT().UpdateCampaign(gomock.Any(), id, gomock.Any()).Return(store.Campaign{}, store.ErrNotFound)

	_, err := processor.UpdateCampaign(context.Background(), id, UpdateCampaignParams{Goals: strPtr("more")})
	if !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestDeleteCampaign(t *testing.T) {
	mockStore, processor := setup(t)
	id := uuid.New()

	mockStore.EXPECT().DeleteCampaign(gomock.Any(), id).Return(nil)
	if err := processor.DeleteCampaign(context.Background(), id); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	mockStore.EXPECT().DeleteCampaign(gomock.Any(), id).Return(store.ErrNotFound)
	if err := processor.DeleteCampaign(context.Background(), id); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name        string
		totals      store.CampaignTotals
		wantAverage float64
	}{
		{name: "empty", totals: store.CampaignTotals{}, wantAverage: 0},
		{name: "rounded to cents", totals: store.CampaignTotals{Total: 3, Active: 1, TotalBudget: 1000}, wantAverage: 333.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore, processor := setup(t)
			mockStore.EXPECT().GetCampaignTotals(gomock.Any()).Return(tt.totals, nil)

			stats, err := processor.GetStats(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if stats.AverageBudget != tt.wantAverage {
				t.Errorf("expected average %v, got %v", tt.wantAverage, stats.AverageBudget)
			}
			if stats.Total != tt.totals.Total || stats.Active != tt.totals.Active {
				t.Errorf("expected counts %d/%d, got %d/%d", tt.totals.Total, tt.totals.Active, stats.Total, stats.Active)
			}
		})
	}
}
