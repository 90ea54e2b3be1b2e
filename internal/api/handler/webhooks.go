package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

const signatureHeader = "X-Hub-Signature-256"

// webhookPayload is the change-notification envelope Meta posts. Only the
// account IDs matter here; the sync pipeline refetches everything else.
type webhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string          `json:"field"`
			Value json.RawMessage `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// VerifyMetaWebhook answers the subscription handshake: echo hub.challenge
// when the verify token matches.
func VerifyMetaWebhook(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if query.Get("hub.mode") != "subscribe" || query.Get("hub.verify_token") != cfg.Webhook.VerifyToken {
			logrus.Warn("webhooks: verification request with invalid token")
			apiErrors.WriteError(w, apiErrors.ErrInvalidVerifyToken, "verify token mismatch", nil)
			return
		}

		if _, err := w.Write([]byte(query.Get("hub.challenge"))); err != nil {
			logrus.WithError(err).Warn("webhooks: error writing challenge response")
		}
	})
}

// ReceiveMetaWebhook validates the payload signature and enqueues an
// incremental sync per affected account. Verified payloads always get a 200
// so the vendor does not retry them.
func ReceiveMetaWebhook(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	jobService jobs.Service,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to read request body", nil)
			return
		}

		if !validSignature(cfg.Meta.AppSecret, r.Header.Get(signatureHeader), body) {
			logrus.Warn("webhooks: payload signature verification failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "invalid payload signature", nil)
			return
		}

		var payload webhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			logrus.WithError(err).Warn("webhooks: dropping malformed payload")
			w.WriteHeader(http.StatusOK)
			return
		}

		seen := make(map[string]bool)
		for _, entry := range payload.Entry {
			accountID := strings.TrimPrefix(entry.ID, "act_")
			if accountID == "" || seen[accountID] {
				continue
			}
			seen[accountID] = true

			account, err := accountRepo.GetByID(accountID)
			if err != nil {
				logrus.WithError(err).Error("webhooks: error loading account")
				continue
			}
			if account == nil {
				logrus.WithField("account_id", accountID).Info("webhooks: skipping unknown account")
				continue
			}

			job, err := jobService.EnqueueSync(r.Context(), accountID, domain.SyncScopeIncremental)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"error":      err.Error(),
				}).Error("webhooks: failed to enqueue incremental sync")
				continue
			}

			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"job_id":     job.ID,
			}).Info("webhooks: incremental sync enqueued")
		}

		w.WriteHeader(http.StatusOK)
	})
}

func validSignature(secret, header string, body []byte) bool {
	signature, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expected))
}
