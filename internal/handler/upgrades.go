package handler

import (
	"net/http"
	"strings"

	"github.com/hexplot/mergefarm/internal/domain"
	"github.com/hexplot/mergefarm/internal/logger"
	"github.com/hexplot/mergefarm/internal/upgrade"
)

// PurchaseRequest identifies the upgrade to buy
type PurchaseRequest struct {
	Category string `json:"category" validate:"required,category"`
	ID       string `json:"id" validate:"required,max=64"`
}

// UpgradesResponse groups upgrade views by category
type UpgradesResponse struct {
	Upgrades map[string][]domain.UpgradeView `json:"upgrades"`
}

// HandleListUpgrades returns the shop contents, optionally filtered by the
// category query parameter.
func HandleListUpgrades(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.ToLower(r.URL.Query().Get("category"))

		if raw != "" {
			if !upgrade.ValidCategory(raw) {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidCategoryError)
				return
			}
			cat := upgrade.Category(raw)
			respondJSON(w, http.StatusOK, UpgradesResponse{
				Upgrades: map[string][]domain.UpgradeView{
					raw: svc.UpgradeViews(cat),
				},
			})
			return
		}

		all := make(map[string][]domain.UpgradeView, len(upgrade.Categories))
		for _, cat := range upgrade.Categories {
			all[string(cat)] = svc.UpgradeViews(cat)
		}
		respondJSON(w, http.StatusOK, UpgradesResponse{Upgrades: all})
	}
}

// HandlePurchaseUpgrade handles buying one level of an upgrade
func HandlePurchaseUpgrade(svc GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase upgrade"); err != nil {
			return
		}

		category := upgrade.Category(strings.ToLower(req.Category))
		outcome, err := svc.Purchase(r.Context(), category, req.ID)
		if err != nil {
			log.Warn("Upgrade purchase rejected", "upgrade", req.ID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if outcome.Status == domain.PurchaseStatusPurchased {
			log.Info("Upgrade purchased",
				"upgrade", outcome.ID,
				"level", outcome.Level,
				"coins_spent", outcome.CoinsSpent)
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}
