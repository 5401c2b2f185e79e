package handler

import (
	"context"
	"net/http"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// GameService is the session surface the HTTP layer depends on.
type GameService interface {
	Snapshot() domain.SessionSnapshot
	Board() []domain.CellView
	TapPlant(ctx context.Context) domain.PlantOutcome
	TapHarvest(ctx context.Context) domain.HarvestOutcome
	AttemptMerge(ctx context.Context, sourceIndex, targetIndex int) domain.MergeOutcome
	Purchase(ctx context.Context, category upgrade.Category, id string) (domain.PurchaseOutcome, error)
	UpgradeViews(category upgrade.Category) []domain.UpgradeView
}

// HandleGetSession returns the full session snapshot
func HandleGetSession(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Snapshot())
	}
}

// BoardResponse wraps the board cells
type BoardResponse struct {
	Cells []domain.CellView `json:"cells"`
}

// HandleGetBoard returns the current board layout
func HandleGetBoard(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, BoardResponse{Cells: svc.Board()})
	}
}
