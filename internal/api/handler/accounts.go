package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/account"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

func AccountList(service account.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		statuses := make([]domain.AccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				statuses = append(statuses, domain.AccountStatus(status))
			}
		}

		accounts, err := service.List(statuses)
		if err != nil {
			logrus.WithError(err).Error("error listing accounts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list accounts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.WithError(err).Warn("error encoding accounts response")
		}
	})
}

func AccountStatus(service account.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account ID is required", nil)
			return
		}

		report, err := service.GetStatus(accountID)
		if err != nil {
			logrus.WithError(err).Error("error loading account status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load account status", nil)
			return
		}
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "account not found", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Warn("error encoding account status response")
		}
	})
}

// DiscoverAccounts pulls the business's ad accounts from the vendor and
// upserts them into the mirror so the nightly fan-out picks them up.
func DiscoverAccounts(service account.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.Discover(r.Context())
		if err != nil {
			if errors.Is(err, account.ErrNoBusinessID) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "no business ID configured", nil)
				return
			}

			logrus.WithError(err).Error("error discovering accounts")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "failed to discover accounts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"discovered": len(accounts),
			"accounts":   accounts,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error encoding discovery response")
		}
	})
}
