package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository/mocks"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	jobsmocks "github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs/mocks"
)

func webhookTestConfig() *config.Config {
	return &config.Config{
		Meta:    config.Meta{AppSecret: "app-secret"},
		Webhook: config.Webhook{VerifyToken: "verify-me"},
	}
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyMetaWebhook(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid subscription handshake echoes the challenge",
			query:      "hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=challenge-42",
			wantStatus: http.StatusOK,
			wantBody:   "challenge-42",
		},
		{
			name:       "wrong verify token",
			query:      "hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=challenge-42",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=verify-me&hub.challenge=challenge-42",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/meta-webhooks?"+tt.query, nil)
			recorder := httptest.NewRecorder()

			VerifyMetaWebhook(webhookTestConfig()).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestReceiveMetaWebhook_EnqueuesIncrementalSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	jobService := jobsmocks.NewMockService(ctrl)
	cfg := webhookTestConfig()

	body := []byte(`{"object":"ad_account","entry":[{"id":"act_123","changes":[{"field":"campaign","value":{}}]}]}`)

	accountRepo.EXPECT().GetByID("123").Return(&domain.Account{ID: "123"}, nil)
	jobService.EXPECT().
		EnqueueSync(gomock.Any(), "123", domain.SyncScopeIncremental).
		Return(&domain.BackgroundJob{ID: "job1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/meta-webhooks", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody(cfg.Meta.AppSecret, body))
	recorder := httptest.NewRecorder()

	ReceiveMetaWebhook(cfg, accountRepo, jobService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestReceiveMetaWebhook_UnknownAccountIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	jobService := jobsmocks.NewMockService(ctrl)
	cfg := webhookTestConfig()

	body := []byte(`{"object":"ad_account","entry":[{"id":"act_999","changes":[]}]}`)

	accountRepo.EXPECT().GetByID("999").Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/meta-webhooks", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody(cfg.Meta.AppSecret, body))
	recorder := httptest.NewRecorder()

	ReceiveMetaWebhook(cfg, accountRepo, jobService).ServeHTTP(recorder, req)

	// Acknowledged so the vendor does not retry.
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestReceiveMetaWebhook_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	jobService := jobsmocks.NewMockService(ctrl)

	body := []byte(`{"object":"ad_account","entry":[]}`)

	req := httptest.NewRequest(http.MethodPost, "/v1/meta-webhooks", bytes.NewReader(body))
	req.Header.Set(signatureHeader, "sha256=deadbeef")
	recorder := httptest.NewRecorder()

	ReceiveMetaWebhook(webhookTestConfig(), accountRepo, jobService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestReceiveMetaWebhook_DuplicateEntriesEnqueueOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	jobService := jobsmocks.NewMockService(ctrl)
	cfg := webhookTestConfig()

	body := []byte(`{"object":"ad_account","entry":[{"id":"act_123","changes":[]},{"id":"act_123","changes":[]}]}`)

	accountRepo.EXPECT().GetByID("123").Return(&domain.Account{ID: "123"}, nil).Times(1)
	jobService.EXPECT().
		EnqueueSync(gomock.Any(), "123", domain.SyncScopeIncremental).
		Return(&domain.BackgroundJob{ID: "job1"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/v1/meta-webhooks", bytes.NewReader(body))
	req.Header.Set(signatureHeader, signBody(cfg.Meta.AppSecret, body))
	recorder := httptest.NewRecorder()

	ReceiveMetaWebhook(cfg, accountRepo, jobService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
