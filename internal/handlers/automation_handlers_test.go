package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BarsilNzola/AutoPay-AI/internal/handlers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/mocks"
	"github.com/BarsilNzola/AutoPay-AI/internal/services"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

const (
	testUser      = "0x1111111111111111111111111111111111111111"
	testRecipient = "0x2222222222222222222222222222222222222222"
	testKey       = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

// stubSetupService records the pipeline invocation and returns a canned
// result.
type stubSetupService struct {
	result business.DelegationResult
	called bool
}

func (s *stubSetupService) SetupAutomationDelegation(ctx context.Context, intent *business.AutomationIntent, wallet interfaces.WalletClient, userAddress string, chainID int64) business.DelegationResult {
	s.called = true
	return s.result
}

func newTestRouter(t *testing.T, setup handlers.SetupService) (*gin.Engine, *mocks.MockAutomationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mocks.NewMockAutomationRepository(ctrl)

	registry := services.NewChainRegistryService(services.DefaultSupportedChains)
	common := handlers.NewCommonServices(repo, setup, registry)
	handler := handlers.NewAutomationHandler(common, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/automations", handler.CreateAutomation)
	v1.GET("/automations", handler.ListAutomations)
	v1.GET("/automations/:automation_id", handler.GetAutomation)
	v1.POST("/automations/:automation_id/confirm", handler.ConfirmAutomation)
	v1.PATCH("/automations/:automation_id", handler.UpdateAutomation)
	v1.DELETE("/automations/:automation_id", handler.DeleteAutomation)
	return router, repo
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAutomation(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		setupMocks func(repo *mocks.MockAutomationRepository)
		wantStatus int
	}{
		{
			name: "creates pending automation",
			body: map[string]interface{}{
				"type":         "recurring_payment",
				"user_address": testUser,
				"params": map[string]interface{}{
					"amount":    "0.1",
					"currency":  "ETH",
					"recipient": testRecipient,
					"frequency": "weekly",
				},
			},
			setupMocks: func(repo *mocks.MockAutomationRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, intent *business.AutomationIntent) (*business.AutomationIntent, error) {
						stored := *intent
						stored.ID = "1700000000000-abcd1234"
						stored.Status = business.AutomationPending
						return &stored, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "rejects unknown type",
			body: map[string]interface{}{
				"type":         "teleport",
				"user_address": testUser,
			},
			setupMocks: func(repo *mocks.MockAutomationRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejects invalid address",
			body: map[string]interface{}{
				"type":         "recurring_payment",
				"user_address": "not-an-address",
			},
			setupMocks: func(repo *mocks.MockAutomationRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rejects missing fields",
			body:       map[string]interface{}{},
			setupMocks: func(repo *mocks.MockAutomationRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t, &stubSetupService{})
			tt.setupMocks(repo)

			w := performJSON(router, http.MethodPost, "/api/v1/automations", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "pending", resp["status"])
				assert.NotEmpty(t, resp["id"])
			}
		})
	}
}

func TestConfirmAutomation(t *testing.T) {
	intent := &business.AutomationIntent{
		ID:          "1700000000000-abcd1234",
		Type:        business.AutomationRecurringPayment,
		UserAddress: testUser,
		Status:      business.AutomationPending,
	}

	t.Run("successful confirmation returns delegation outcome", func(t *testing.T) {
		setup := &stubSetupService{result: business.DelegationResult{
			Success:        true,
			DelegationHash: "0xhash",
			Simulated:      true,
			WalletType:     business.WalletTypeEOA,
			Message:        "simulated",
		}}
		router, repo := newTestRouter(t, setup)

		activated := *intent
		activated.Status = business.AutomationActive
		repo.EXPECT().Get(gomock.Any(), testUser, intent.ID).Return(intent, nil)
		repo.EXPECT().Get(gomock.Any(), testUser, intent.ID).Return(&activated, nil)

		w := performJSON(router, http.MethodPost, "/api/v1/automations/"+intent.ID+"/confirm", map[string]interface{}{
			"user_address":       testUser,
			"chain_id":           11155111,
			"wallet_private_key": testKey,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, setup.called)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		delegation := resp["delegation"].(map[string]interface{})
		assert.Equal(t, true, delegation["success"])
		assert.Equal(t, true, delegation["simulated"])
		automation := resp["automation"].(map[string]interface{})
		assert.Equal(t, "active", automation["status"])
	})

	t.Run("pipeline failure returns unprocessable entity", func(t *testing.T) {
		setup := &stubSetupService{result: business.DelegationResult{
			Success: false,
			Error:   "recurring payment requires a valid amount",
		}}
		router, repo := newTestRouter(t, setup)

		repo.EXPECT().Get(gomock.Any(), testUser, intent.ID).Return(intent, nil).Times(2)

		w := performJSON(router, http.MethodPost, "/api/v1/automations/"+intent.ID+"/confirm", map[string]interface{}{
			"user_address":       testUser,
			"chain_id":           11155111,
			"wallet_private_key": testKey,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown automation is not found", func(t *testing.T) {
		setup := &stubSetupService{}
		router, repo := newTestRouter(t, setup)

		repo.EXPECT().Get(gomock.Any(), testUser, "missing").Return(nil, interfaces.ErrAutomationNotFound)

		w := performJSON(router, http.MethodPost, "/api/v1/automations/missing/confirm", map[string]interface{}{
			"user_address":       testUser,
			"chain_id":           11155111,
			"wallet_private_key": testKey,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, setup.called)
	})

	t.Run("no wallet key and no demo signer is rejected", func(t *testing.T) {
		setup := &stubSetupService{}
		router, repo := newTestRouter(t, setup)

		repo.EXPECT().Get(gomock.Any(), testUser, intent.ID).Return(intent, nil)

		w := performJSON(router, http.MethodPost, "/api/v1/automations/"+intent.ID+"/confirm", map[string]interface{}{
			"user_address": testUser,
			"chain_id":     11155111,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, setup.called)
	})
}

func TestListAutomations(t *testing.T) {
	router, repo := newTestRouter(t, &stubSetupService{})

	repo.EXPECT().ListByUser(gomock.Any(), testUser).Return([]business.AutomationIntent{
		{ID: "a", Type: business.AutomationReminder, UserAddress: testUser},
		{ID: "b", Type: business.AutomationStaking, UserAddress: testUser},
	}, nil)

	w := performJSON(router, http.MethodGet, "/api/v1/automations?user_address="+testUser, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp["object"])
	assert.Len(t, resp["data"], 2)
}

func TestListAutomationsRequiresAddress(t *testing.T) {
	router, _ := newTestRouter(t, &stubSetupService{})

	w := performJSON(router, http.MethodGet, "/api/v1/automations", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAutomation(t *testing.T) {
	router, repo := newTestRouter(t, &stubSetupService{})

	repo.EXPECT().Get(gomock.Any(), testUser, "a").Return(&business.AutomationIntent{
		ID: "a", Type: business.AutomationReminder, UserAddress: testUser,
	}, nil)

	w := performJSON(router, http.MethodGet, "/api/v1/automations/a?user_address="+testUser, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAutomation(t *testing.T) {
	router, repo := newTestRouter(t, &stubSetupService{})

	repo.EXPECT().Update(gomock.Any(), testUser, "a", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params interfaces.UpdateAutomationParams) (*business.AutomationIntent, error) {
			require.NotNil(t, params.Status)
			assert.Equal(t, business.AutomationCompleted, *params.Status)
			return &business.AutomationIntent{ID: "a", Status: *params.Status, UserAddress: testUser}, nil
		})

	w := performJSON(router, http.MethodPatch, "/api/v1/automations/a?user_address="+testUser, map[string]interface{}{
		"status": "completed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAutomationRejectsUnknownStatus(t *testing.T) {
	router, _ := newTestRouter(t, &stubSetupService{})

	w := performJSON(router, http.MethodPatch, "/api/v1/automations/a?user_address="+testUser, map[string]interface{}{
		"status": "paused",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAutomation(t *testing.T) {
	t.Run("deletes existing automation", func(t *testing.T) {
		router, repo := newTestRouter(t, &stubSetupService{})
		repo.EXPECT().Delete(gomock.Any(), testUser, "a").Return(true, nil)

		w := performJSON(router, http.MethodDelete, "/api/v1/automations/a?user_address="+testUser, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing automation is not found", func(t *testing.T) {
		router, repo := newTestRouter(t, &stubSetupService{})
		repo.EXPECT().Delete(gomock.Any(), testUser, "missing").Return(false, nil)

		w := performJSON(router, http.MethodDelete, "/api/v1/automations/missing?user_address="+testUser, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	registry := services.NewChainRegistryService([]int64{1, 11155111})
	handler := handlers.NewHealthHandler(registry, "1.0.0")

	router := gin.New()
	router.GET("/health", handler.Health)

	w := performJSON(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Len(t, resp["supported_chains"], 2)
}
