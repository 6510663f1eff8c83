package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/api/requests"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/api/responses"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/gin-gonic/gin"

	walletclient "github.com/BarsilNzola/AutoPay-AI/internal/client/wallet"
)

// SetupService drives the delegation setup pipeline for a confirmed
// automation.
type SetupService interface {
	SetupAutomationDelegation(ctx context.Context, intent *business.AutomationIntent, wallet interfaces.WalletClient, userAddress string, chainID int64) business.DelegationResult
}

// AutomationHandler handles automation lifecycle requests.
type AutomationHandler struct {
	common *CommonServices
	// demoWallet backs confirmations that do not supply their own key.
	demoWallet interfaces.WalletClient
}

// NewAutomationHandler creates a new AutomationHandler.
func NewAutomationHandler(common *CommonServices, demoWallet interfaces.WalletClient) *AutomationHandler {
	return &AutomationHandler{
		common:     common,
		demoWallet: demoWallet,
	}
}

// CreateAutomation registers a new automation intent in pending state.
func (h *AutomationHandler) CreateAutomation(c *gin.Context) {
	var req requests.CreateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !business.IsValidAutomationType(business.AutomationType(req.Type)) {
		sendError(c, http.StatusBadRequest, "Unsupported automation type", nil)
		return
	}
	if !helpers.IsAddressValid(req.UserAddress) {
		sendError(c, http.StatusBadRequest, "Invalid user address", nil)
		return
	}

	intent := &business.AutomationIntent{
		Type:        business.AutomationType(req.Type),
		UserAddress: req.UserAddress,
		Params: business.AutomationParams{
			Amount:          req.Params.Amount,
			Currency:        req.Params.Currency,
			Recipient:       req.Params.Recipient,
			Frequency:       req.Params.Frequency,
			ContractAddress: req.Params.ContractAddress,
		},
	}

	created, err := h.common.repo.Create(c.Request.Context(), intent)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create automation", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toAutomationResponse(created))
}

// ConfirmAutomation runs the delegation setup pipeline for a pending
// automation. Simulated outcomes are successful confirmations; only input
// validation and submission faults surface as failures.
func (h *AutomationHandler) ConfirmAutomation(c *gin.Context) {
	automationID := c.Param("automation_id")

	var req requests.ConfirmAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !helpers.IsAddressValid(req.UserAddress) {
		sendError(c, http.StatusBadRequest, "Invalid user address", nil)
		return
	}

	intent, err := h.common.repo.Get(c.Request.Context(), req.UserAddress, automationID)
	if err != nil {
		handleStoreError(c, err, "Automation not found")
		return
	}

	wallet, err := h.resolveWallet(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, "No signing wallet available", err)
		return
	}

	result := h.common.setup.SetupAutomationDelegation(c.Request.Context(), intent, wallet, req.UserAddress, req.ChainID)

	// Re-read so the response reflects the persisted outcome.
	updated, err := h.common.repo.Get(c.Request.Context(), req.UserAddress, automationID)
	if err != nil {
		updated = intent
	}

	response := responses.ConfirmAutomationResponse{
		Automation: toAutomationResponse(updated),
		Delegation: responses.DelegationOutcome{
			Success:         result.Success,
			DelegationHash:  result.DelegationHash,
			TransactionHash: result.TransactionHash,
			Simulated:       result.Simulated,
			WalletType:      string(result.WalletType),
			Message:         result.Message,
			Error:           result.Error,
		},
	}

	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}
	sendSuccess(c, http.StatusOK, response)
}

// ListAutomations returns all automations owned by a user.
func (h *AutomationHandler) ListAutomations(c *gin.Context) {
	userAddress := c.Query("user_address")
	if !helpers.IsAddressValid(userAddress) {
		sendError(c, http.StatusBadRequest, "Invalid user address", nil)
		return
	}

	intents, err := h.common.repo.ListByUser(c.Request.Context(), userAddress)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list automations", err)
		return
	}

	items := make([]responses.AutomationResponse, 0, len(intents))
	for i := range intents {
		items = append(items, toAutomationResponse(&intents[i]))
	}
	sendList(c, items)
}

// GetAutomation returns a single automation.
func (h *AutomationHandler) GetAutomation(c *gin.Context) {
	userAddress := c.Query("user_address")
	if !helpers.IsAddressValid(userAddress) {
		sendError(c, http.StatusBadRequest, "Invalid user address", nil)
		return
	}

	intent, err := h.common.repo.Get(c.Request.Context(), userAddress, c.Param("automation_id"))
	if err != nil {
		handleStoreError(c, err, "Automation not found")
		return
	}
	sendSuccess(c, http.StatusOK, toAutomationResponse(intent))
}

// UpdateAutomation applies a partial update to an automation.
func (h *AutomationHandler) UpdateAutomation(c *gin.Context) {
	userAddress := c.Query("user_address")
	if !helpers.IsAddressValid(userAddress) {
		sendError(c, http.StatusBadRequest, "Invalid user address", nil)
		return
	}

	var req requests.UpdateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := interfaces.UpdateAutomationParams{}
	if req.Status != nil {
		status := business.AutomationStatus(*req.Status)
		if !business.IsValidAutomationStatus(status) {
			sendError(c, http.StatusBadRequest, "Unsupported automation status", nil)
			return
		}
		params.Status = &status
	}

	updated, err := h.common.repo.Update(c.Request.Context(), userAddress, c.Param("automation_id"), params)
	if err != nil {
		handleStoreError(c, err, "Automation not found")
		return
	}
	sendSuccess(c, http.StatusOK, toAutomationResponse(updated))
}

// DeleteAutomation removes an automation. Deleting an active automation is
// how a user revokes its delegation in the demo flow.
func (h *AutomationHandler) DeleteAutomation(c *gin.Context) {
	userAddress := c.Query("user_address")
	if !helpers.IsAddressValid(userAddress) {
		sendError(c, http.StatusBadRequest, "Invalid user address", nil)
		return
	}

	deleted, err := h.common.repo.Delete(c.Request.Context(), userAddress, c.Param("automation_id"))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete automation", err)
		return
	}
	if !deleted {
		sendError(c, http.StatusNotFound, "Automation not found", nil)
		return
	}
	sendSuccess(c, http.StatusOK, SuccessResponse{Message: "Automation deleted"})
}

// resolveWallet picks the signing wallet for a confirmation: a per-request
// demo key when provided, otherwise the server's configured demo signer.
func (h *AutomationHandler) resolveWallet(req requests.ConfirmAutomationRequest) (interfaces.WalletClient, error) {
	if req.WalletPrivateKey != "" {
		return walletclient.NewLocalWallet(req.WalletPrivateKey)
	}
	if h.demoWallet != nil {
		return h.demoWallet, nil
	}
	return nil, errNoWallet
}

var errNoWallet = &walletUnavailableError{}

type walletUnavailableError struct{}

func (e *walletUnavailableError) Error() string {
	return "no wallet key supplied and no demo signer configured"
}

func toAutomationResponse(intent *business.AutomationIntent) responses.AutomationResponse {
	resp := responses.AutomationResponse{
		ID:              intent.ID,
		Type:            string(intent.Type),
		Status:          string(intent.Status),
		UserAddress:     intent.UserAddress,
		Params:          intent.Params,
		CreatedAt:       intent.CreatedAt.UTC().Format(time.RFC3339),
		DelegationHash:  intent.DelegationHash,
		TransactionHash: intent.TransactionHash,
		Simulated:       intent.Simulated,
	}
	if intent.NextRunAt != nil {
		next := intent.NextRunAt.UTC().Format(time.RFC3339)
		resp.NextRunAt = &next
	}
	return resp
}
