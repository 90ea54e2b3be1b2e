package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

type exchangeTokenRequestBody struct {
	AccessToken string `json:"access_token"`
}

type exchangeTokenResponseBody struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeMetaToken trades a short-lived user token for a long-lived one.
// The long-lived token is returned to the caller, not stored.
func ExchangeMetaToken(integrator meta.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body exchangeTokenRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if body.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "access_token is required", nil)
			return
		}

		token, expiresIn, err := integrator.ExchangeToken(r.Context(), body.AccessToken)
		if err != nil {
			logrus.WithError(err).Error("error exchanging access token")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "failed to exchange access token", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := exchangeTokenResponseBody{
			AccessToken: token,
			ExpiresIn:   expiresIn,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error encoding token exchange response")
		}
	})
}
