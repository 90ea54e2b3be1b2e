package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	integratormocks "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/mocks"
)

func TestExchangeMetaToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := integratormocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().
		ExchangeToken(gomock.Any(), "short-lived").
		Return("long-lived", int64(5184000), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/meta/token/exchange",
		strings.NewReader(`{"access_token":"short-lived"}`))
	recorder := httptest.NewRecorder()

	ExchangeMetaToken(integrator).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"access_token":"long-lived","expires_in":5184000}`, recorder.Body.String())
}

func TestExchangeMetaToken_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(integrator *integratormocks.MockIntegrator)
		wantStatus int
	}{
		{
			name:       "invalid body",
			body:       "{not-json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing token",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "vendor error",
			body: `{"access_token":"short-lived"}`,
			setup: func(integrator *integratormocks.MockIntegrator) {
				integrator.EXPECT().
					ExchangeToken(gomock.Any(), "short-lived").
					Return("", int64(0), errors.New("vendor unavailable"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := integratormocks.NewMockIntegrator(ctrl)
			if tt.setup != nil {
				tt.setup(integrator)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/meta/token/exchange",
				strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			ExchangeMetaToken(integrator).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
