package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
	"finboard/internal/summary"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest is the payload for creating or replacing a transaction.
// Amount is in minor units; negative amounts are expenses.
type TransactionRequest struct {
	Date       string  `json:"date" binding:"required"`
	AccountID  string  `json:"accountId" binding:"required,uuid"`
	CategoryID *string `json:"categoryId" binding:"omitempty,uuid"`
	Payee      string  `json:"payee" binding:"required,notblank,max=255"`
	Amount     *int64  `json:"amount" binding:"required"`
	Notes      *string `json:"notes" binding:"omitempty,max=1000"`
}

// TransactionQuery filters the transaction list.
type TransactionQuery struct {
	From      string `form:"from" binding:"omitempty,calendar_date"`
	To        string `form:"to" binding:"omitempty,calendar_date"`
	AccountID string `form:"accountId" binding:"omitempty,uuid"`
}

// toInput converts the request into service input. Dates may be yyyy-MM-dd
// or an RFC 3339 timestamp; only the calendar day is kept.
func (r TransactionRequest) toInput() (services.TransactionInput, error) {
	date, err := summary.ParseDate(r.Date)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, r.Date)
		if tsErr != nil {
			return services.TransactionInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date: Must be a date in yyyy-MM-dd format")
		}
		date = summary.Day(ts)
	}

	return services.TransactionInput{
		Date:       date,
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
		Payee:      r.Payee,
		Amount:     *r.Amount,
		Notes:      r.Notes,
	}, nil
}

// ListTransactions returns the user's transactions for a period
// @Summary     List transactions
// @Description Transactions between from and to (default: the last 30 days), newest first
// @Tags        transactions
// @Produce     json
// @Security    SessionCookie
// @Param       from      query string false "Start date (yyyy-MM-dd)"
// @Param       to        query string false "End date (yyyy-MM-dd)"
// @Param       accountId query string false "Only this account"
// @Success     200 {array}  services.TransactionRow
// @Failure     400 {object} ErrorResponse "Invalid date or range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter := services.TransactionFilter{From: q.From, To: q.To}
	if q.AccountID != "" {
		filter.AccountID = &q.AccountID
	}

	rows, err := h.transactionService.ListTransactions(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GetTransaction returns a single transaction
// @Summary     Get transaction
// @Tags        transactions
// @Produce     json
// @Security    SessionCookie
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Missing or invalid id"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tx})
}

// CreateTransaction records a transaction
// @Summary     Create transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body TransactionRequest true "Transaction"
// @Success     201 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Router      /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.CreateTransaction(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{"account_id": tx.AccountID, "amount": tx.Amount})

	c.JSON(http.StatusCreated, gin.H{"data": tx})
}

// BulkCreateTransactions records several transactions at once
// @Summary     Bulk create transactions
// @Description All transactions are stored or none are
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body []TransactionRequest true "Transactions"
// @Success     201 {array}  models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Router      /api/transactions/bulk-create [post]
func (h *TransactionHandler) BulkCreateTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var reqs []TransactionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	in := make([]services.TransactionInput, 0, len(reqs))
	for _, req := range reqs {
		item, err := req.toInput()
		if err != nil {
			respondWithError(c, err)
			return
		}
		in = append(in, item)
	}

	created, err := h.transactionService.BulkCreateTransactions(userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "BULK_CREATE_TRANSACTIONS", "transaction", "", c.ClientIP(),
		map[string]interface{}{"count": len(created)})

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// UpdateTransaction replaces a transaction
// @Summary     Update transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction, account or category not found"
// @Router      /api/transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.UpdateTransaction(userID, transactionID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{"account_id": tx.AccountID, "amount": tx.Amount})

	c.JSON(http.StatusOK, gin.H{"data": tx})
}

// DeleteTransaction deletes a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    SessionCookie
// @Param       id path string true "Transaction ID"
// @Success     200 {object} IDResponse
// @Failure     400 {object} ErrorResponse "Missing or invalid id"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"data": IDResponse{ID: transactionID}})
}

// BulkDeleteTransactions deletes several transactions
// @Summary     Bulk delete transactions
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body BulkDeleteRequest true "Transaction ids"
// @Success     200 {array} IDResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /api/transactions/bulk-delete [post]
func (h *TransactionHandler) BulkDeleteTransactions(c *gin.Context) {
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

	deleted, err := h.transactionService.BulkDeleteTransactions(userID, req.IDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "BULK_DELETE_TRANSACTIONS", "transaction", "", c.ClientIP(),
		map[string]interface{}{"ids": deleted})

	c.JSON(http.StatusOK, gin.H{"data": idList(deleted)})
}
