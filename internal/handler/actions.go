package handler

import (
	"net/http"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/logger"
)

// MergeRequest identifies the cells involved in a drag-release
type MergeRequest struct {
	SourceIndex *int `json:"source_index" validate:"required,gte=0,lte=18"`
	TargetIndex *int `json:"target_index" validate:"required,gte=0,lte=18"`
}

// HandlePlant handles a plant tap
func HandlePlant(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		outcome := svc.TapPlant(r.Context())

		log.Info("Plant tap resolved",
			"disposition", outcome.Disposition,
			"seeds_in_storage", outcome.SeedsInStorage,
			"fired", len(outcome.FiredSeeds))
		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleHarvest handles a harvest tap
func HandleHarvest(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		outcome := svc.TapHarvest(r.Context())

		if outcome.Harvested {
			log.Info("Harvest performed",
				"total_coins", outcome.TotalCoins,
				"cells", len(outcome.Payouts),
				"lucky", outcome.LuckySecondPass)
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleMerge handles a drag-release between two board cells
func HandleMerge(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MergeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Merge"); err != nil {
			return
		}

		outcome := svc.AttemptMerge(r.Context(), *req.SourceIndex, *req.TargetIndex)

		if outcome.Kind == domain.MergeKindMerged {
			log.Info("Crops merged",
				"source", outcome.SourceIndex,
				"target", outcome.TargetIndex,
				"result_level", outcome.ResultLevel,
				"lucky", outcome.Lucky)
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}
