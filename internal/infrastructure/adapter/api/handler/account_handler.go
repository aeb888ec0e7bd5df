package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/vitacoin/rewards-engine/internal/domain/error"
	coreport "github.com/vitacoin/rewards-engine/internal/domain/port/core"
	accountUseCase "github.com/vitacoin/rewards-engine/internal/domain/usecase/account"
	"github.com/vitacoin/rewards-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *accountUseCase.Service
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountService *accountUseCase.Service, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Signup handles the POST /accounts endpoint
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid signup request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	account, err := h.accountService.Signup(c.Request.Context(), req.ID, req.DisplayName)
	if err != nil {
		h.logger.Error("Error creating account", map[string]any{
			"account_id": req.ID,
			"error":      err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// Get handles the GET /accounts/:accountId endpoint
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.accountService.Get(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// Ledger handles the GET /accounts/:accountId/ledger endpoint
func (h *AccountHandler) Ledger(c *gin.Context) {
	limit, offset := pagination(c)
	entries, err := h.accountService.Ledger(c.Request.Context(), c.Param("accountId"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLedgerEntryResponses(entries))
}

// VerifyLedger handles the GET /accounts/:accountId/ledger/verify endpoint.
// Diagnostic: recomputes the ledger sum and compares it with the balance.
func (h *AccountHandler) VerifyLedger(c *gin.Context) {
	accountID := c.Param("accountId")
	consistent, err := h.accountService.VerifyLedgerBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LedgerVerificationResponse{
		AccountID:  accountID,
		Consistent: consistent,
	})
}

// Notifications handles the GET /accounts/:accountId/notifications endpoint
func (h *AccountHandler) Notifications(c *gin.Context) {
	limit, _ := pagination(c)
	notifications, err := h.accountService.Notifications(c.Request.Context(), c.Param("accountId"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNotificationResponses(notifications))
}

// MarkNotificationRead handles the POST /accounts/:accountId/notifications/:notificationId/read endpoint
func (h *AccountHandler) MarkNotificationRead(c *gin.Context) {
	err := h.accountService.MarkNotificationRead(c.Request.Context(), c.Param("accountId"), c.Param("notificationId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BadgeCatalog handles the GET /accounts/:accountId/badges endpoint
func (h *AccountHandler) BadgeCatalog(c *gin.Context) {
	items, err := h.accountService.Catalog(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBadgeCatalogResponses(items))
}

// pagination reads limit and offset query parameters with sane bounds
func pagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
