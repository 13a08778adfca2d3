package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/pagination"
	"finboard/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// AccountRequest is the payload for creating or renaming an account.
type AccountRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

// BulkDeleteRequest lists the ids to delete in one call.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,dive,uuid"`
}

// ListAccounts returns the user's accounts
// @Summary     List accounts
// @Description Get the authenticated user's accounts, optionally paginated
// @Tags        accounts
// @Produce     json
// @Security    SessionCookie
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100); omit for all"
// @Success     200 {object} pagination.PageResponse[models.Account]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.accountService.GetUserAccounts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccount returns a single account
// @Summary     Get account
// @Tags        accounts
// @Produce     json
// @Security    SessionCookie
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account
// @Failure     400 {object} ErrorResponse "Missing or invalid id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /api/accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// CreateAccount creates an account
// @Summary     Create account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body AccountRequest true "Account name"
// @Success     201 {object} models.Account
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	account, err := h.accountService.CreateAccount(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": account.Name})

	c.JSON(http.StatusCreated, gin.H{"data": account})
}

// UpdateAccount renames an account
// @Summary     Rename account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       id      path string         true "Account ID"
// @Param       request body AccountRequest true "New name"
// @Success     200 {object} models.Account
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /api/accounts/{id} [patch]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	account, err := h.accountService.UpdateAccount(userID, accountID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": account.Name})

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// DeleteAccount deletes an account and its transactions
// @Summary     Delete account
// @Tags        accounts
// @Produce     json
// @Security    SessionCookie
// @Param       id path string true "Account ID"
// @Success     200 {object} IDResponse
// @Failure     400 {object} ErrorResponse "Missing or invalid id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /api/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(userID, accountID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ACCOUNT", "account", accountID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"data": IDResponse{ID: accountID}})
}

// BulkDeleteAccounts deletes several accounts
// @Summary     Bulk delete accounts
// @Description Delete the listed accounts owned by the user; other ids are ignored
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body BulkDeleteRequest true "Account ids"
// @Success     200 {array} IDResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/accounts/bulk-delete [post]
func (h *AccountHandler) BulkDeleteAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	deleted, err := h.accountService.BulkDeleteAccounts(userID, req.IDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "BULK_DELETE_ACCOUNTS", "account", "", c.ClientIP(),
		map[string]interface{}{"ids": deleted})

	c.JSON(http.StatusOK, gin.H{"data": idList(deleted)})
}
