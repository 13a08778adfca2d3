package services

import (
	"context"
	"time"

	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/summary"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
}

// SessionServicer defines the contract for cookie-backed login sessions.
type SessionServicer interface {
	CreateSession(userID string) (*models.Session, error)
	IssueToken(session *models.Session) (string, error)
	ValidateSession(token string) (*models.User, *models.Session, error)
	InvalidateSession(sessionID string) error
	DeleteExpiredSessions(userID string) (int64, error)
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name string) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID, name string) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
	BulkDeleteAccounts(userID string, ids []string) ([]string, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
	BulkDeleteCategories(userID string, ids []string) ([]string, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	From      string
	To        string
	AccountID *string
}

// TransactionInput carries the mutable fields of a transaction.
type TransactionInput struct {
	Date       time.Time
	AccountID  string
	CategoryID *string
	Payee      string
	Amount     int64
	Notes      *string
}

// TransactionRow is a transaction joined with its account and category names.
type TransactionRow struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Category   *string   `json:"category"`
	CategoryID *string   `json:"categoryId"`
	Payee      string    `json:"payee"`
	Amount     int64     `json:"amount"`
	Notes      *string   `json:"notes"`
	Account    string    `json:"account"`
	AccountID  string    `json:"accountId"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(userID string, filter TransactionFilter) ([]TransactionRow, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error)
	BulkCreateTransactions(userID string, in []TransactionInput) ([]models.Transaction, error)
	UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	BulkDeleteTransactions(userID string, ids []string) ([]string, error)
}

// SummaryQuery selects the period and optional account of a summary.
type SummaryQuery struct {
	From      string
	To        string
	AccountID *string
}

// SummaryServicer defines the contract for the dashboard summary.
type SummaryServicer interface {
	GetSummary(ctx context.Context, userID string, q SummaryQuery) (*summary.Summary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
