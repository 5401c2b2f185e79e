package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/event"
	"github.com/hexplot/mergefarm/internal/eventlog"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// stubGame is a hand-written GameService fake; each field overrides one
// method, leaving the rest as zero-value responses.
type stubGame struct {
	snapshot     domain.SessionSnapshot
	plantOutcome domain.PlantOutcome
	mergeOutcome domain.MergeOutcome
	mergeCalls   [][2]int

	purchaseOutcome domain.PurchaseOutcome
	purchaseErr     error

	upgradeViews []domain.UpgradeView
}

func (s *stubGame) Snapshot() domain.SessionSnapshot { return s.snapshot }
func (s *stubGame) Board() []domain.CellView         { return s.snapshot.Board }
func (s *stubGame) TapPlant(ctx context.Context) domain.PlantOutcome {
	return s.plantOutcome
}
func (s *stubGame) TapHarvest(ctx context.Context) domain.HarvestOutcome {
	return domain.HarvestOutcome{}
}
func (s *stubGame) AttemptMerge(ctx context.Context, sourceIndex, targetIndex int) domain.MergeOutcome {
	s.mergeCalls = append(s.mergeCalls, [2]int{sourceIndex, targetIndex})
	return s.mergeOutcome
}
func (s *stubGame) Purchase(ctx context.Context, category upgrade.Category, id string) (domain.PurchaseOutcome, error) {
	return s.purchaseOutcome, s.purchaseErr
}
func (s *stubGame) UpgradeViews(category upgrade.Category) []domain.UpgradeView {
	return s.upgradeViews
}

func TestHandleGetSession(t *testing.T) {
	game := &stubGame{snapshot: domain.SessionSnapshot{Money: 42, HighestPlantLevelEver: 3}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	rr := httptest.NewRecorder()
	HandleGetSession(game)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var snap domain.SessionSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.Equal(t, 42, snap.Money)
	assert.Equal(t, 3, snap.HighestPlantLevelEver)
}

func TestHandlePlant(t *testing.T) {
	game := &stubGame{plantOutcome: domain.PlantOutcome{
		Disposition:    domain.SeedDispositionStored,
		SeedsInStorage: 1,
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/plant", nil)
	rr := httptest.NewRecorder()
	HandlePlant(game)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var outcome domain.PlantOutcome
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &outcome))
	assert.Equal(t, domain.SeedDispositionStored, outcome.Disposition)
}

func TestHandleMerge(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCall   bool
	}{
		{"valid", `{"source_index": 4, "target_index": 9}`, http.StatusOK, true},
		{"index zero is valid", `{"source_index": 0, "target_index": 9}`, http.StatusOK, true},
		{"missing target", `{"source_index": 4}`, http.StatusBadRequest, false},
		{"out of range", `{"source_index": 4, "target_index": 19}`, http.StatusBadRequest, false},
		{"negative index", `{"source_index": -1, "target_index": 9}`, http.StatusBadRequest, false},
		{"malformed json", `{`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &stubGame{mergeOutcome: domain.MergeOutcome{Kind: domain.MergeKindNoop}}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/merge", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			HandleMerge(game)(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCall {
				require.Len(t, game.mergeCalls, 1)
			} else {
				assert.Empty(t, game.mergeCalls)
			}
		})
	}
}

func TestHandlePurchaseUpgrade(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		outcome    domain.PurchaseOutcome
		err        error
		wantStatus int
	}{
		{
			name:       "purchased",
			body:       `{"category": "seeds", "id": "seed_production"}`,
			outcome:    domain.PurchaseOutcome{Status: domain.PurchaseStatusPurchased, ID: "seed_production", Level: 1},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unaffordable is still 200",
			body:       `{"category": "seeds", "id": "bonus_seeds"}`,
			outcome:    domain.PurchaseOutcome{Status: domain.PurchaseStatusUnaffordable},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown upgrade",
			body:       `{"category": "seeds", "id": "time_machine"}`,
			err:        fmt.Errorf("%w: time_machine", domain.ErrUnknownUpgrade),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "category mismatch",
			body:       `{"category": "crops", "id": "seed_production"}`,
			err:        fmt.Errorf("%w: seed_production", domain.ErrCategoryMismatch),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid category rejected by validation",
			body:       `{"category": "plants", "id": "seed_production"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing id",
			body:       `{"category": "seeds"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &stubGame{purchaseOutcome: tt.outcome, purchaseErr: tt.err}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/upgrades/purchase", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			HandlePurchaseUpgrade(game)(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestHandleListUpgrades(t *testing.T) {
	views := []domain.UpgradeView{{ID: "seed_production", Category: "seeds"}}
	game := &stubGame{upgradeViews: views}

	t.Run("filtered by category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/upgrades?category=seeds", nil)
		rr := httptest.NewRecorder()
		HandleListUpgrades(game)(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp UpgradesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Contains(t, resp.Upgrades, "seeds")
		assert.Len(t, resp.Upgrades, 1)
	})

	t.Run("all categories", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/upgrades", nil)
		rr := httptest.NewRecorder()
		HandleListUpgrades(game)(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp UpgradesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Upgrades, len(upgrade.Categories))
	})

	t.Run("unknown category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/upgrades?category=plants", nil)
		rr := httptest.NewRecorder()
		HandleListUpgrades(game)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleRecentEvents(t *testing.T) {
	journal, err := eventlog.NewJournal(16)
	require.NoError(t, err)
	bus := event.NewMemoryBus()
	journal.Register(bus)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(ctx, event.New(event.SeedProduced, nil)))
	}

	t.Run("default limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/recent", nil)
		rr := httptest.NewRecorder()
		HandleRecentEvents(journal)(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp RecentEventsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 5)
	})

	t.Run("explicit limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/recent?limit=2", nil)
		rr := httptest.NewRecorder()
		HandleRecentEvents(journal)(rr, req)

		var resp RecentEventsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 2)
	})

	t.Run("bad limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/recent?limit=zero", nil)
		rr := httptest.NewRecorder()
		HandleRecentEvents(journal)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	HandleHealthz()(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

type failingChecker struct{}

func (failingChecker) CheckHealth(context.Context) error {
	return fmt.Errorf("component down")
}

type okChecker struct{}

func (okChecker) CheckHealth(context.Context) error { return nil }

func TestHandleReadyz(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rr := httptest.NewRecorder()
		HandleReadyz(okChecker{})(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unavailable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rr := httptest.NewRecorder()
		HandleReadyz(okChecker{}, failingChecker{})(rr, req)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestFormatValidationError(t *testing.T) {
	var req MergeRequest
	err := GetValidator().ValidateStruct(&req)
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["sourceindex"])
	assert.Equal(t, "This field is required", fields["targetindex"])
}
