package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/summary"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTransactionService creates a new TransactionServicer. now supplies
// today's date for the default listing period; nil means time.Now.
func NewTransactionService(db *gorm.DB, now func() time.Time) TransactionServicer {
	if now == nil {
		now = time.Now
	}
	return &transactionService{db: db, now: now}
}

// ListTransactions returns the user's transactions in the filter's period,
// newest first, with account and category names joined in.
func (s *transactionService) ListTransactions(userID string, filter TransactionFilter) ([]TransactionRow, error) {
	period, err := resolvePeriod(filter.From, filter.To, s.now())
	if err != nil {
		return nil, err
	}

	rows := []TransactionRow{}
	err = userTransactions(userID).account(filter.AccountID).within(period).
		apply(s.db.Model(&models.Transaction{})).
		Select("transactions.id, transactions.date, categories.name AS category, transactions.category_id, " +
			"transactions.payee, transactions.amount, transactions.notes, accounts.name AS account, transactions.account_id").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Order("transactions.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range rows {
		rows[i].Date = rows[i].Date.UTC()
	}
	return rows, nil
}

// GetTransactionByID retrieves a transaction on one of the user's accounts.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	return findTransaction(s.db, userID, transactionID)
}

// CreateTransaction records a transaction on one of the user's accounts.
func (s *transactionService) CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error) {
	var created models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		owned := newOwnershipCheck(tx, userID)
		t, err := owned.build(in)
		if err != nil {
			return err
		}
		if err := tx.Create(&t).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// BulkCreateTransactions records all of in or none of it.
func (s *transactionService) BulkCreateTransactions(userID string, in []TransactionInput) ([]models.Transaction, error) {
	created := make([]models.Transaction, 0, len(in))
	if len(in) == 0 {
		return created, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		owned := newOwnershipCheck(tx, userID)
		for _, item := range in {
			t, err := owned.build(item)
			if err != nil {
				return err
			}
			created = append(created, t)
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTransaction replaces every mutable field of a transaction.
func (s *transactionService) UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error) {
	var updated *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := findTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}

		t, err := newOwnershipCheck(tx, userID).build(in)
		if err != nil {
			return err
		}

		if err := tx.Model(existing).
			Select("date", "account_id", "category_id", "payee", "amount", "notes").
			Updates(&t).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		t.Base = existing.Base
		updated = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction soft-deletes a transaction on one of the user's accounts.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		t, err := findTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}
		if err := tx.Delete(t).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// BulkDeleteTransactions deletes the transactions in ids that sit on the
// user's accounts and returns the ids actually deleted.
func (s *transactionService) BulkDeleteTransactions(userID string, ids []string) ([]string, error) {
	deleted := []string{}
	if len(ids) == 0 {
		return deleted, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := userTransactions(userID).apply(tx.Model(&models.Transaction{})).
			Where("transactions.id IN ?", ids).
			Pluck("transactions.id", &deleted).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(deleted) == 0 {
			return nil
		}
		if err := tx.Where("id IN ?", deleted).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// findTransaction loads a transaction whose account is live and owned by userID.
func findTransaction(db *gorm.DB, userID, transactionID string) (*models.Transaction, error) {
	var t models.Transaction
	err := userTransactions(userID).apply(db.Model(&models.Transaction{})).
		Where("transactions.id = ?", transactionID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &t, nil
}

// ownershipCheck validates transaction input against the user's accounts and
// categories, remembering ids it has already seen.
type ownershipCheck struct {
	db         *gorm.DB
	userID     string
	accounts   map[string]bool
	categories map[string]bool
}

func newOwnershipCheck(db *gorm.DB, userID string) *ownershipCheck {
	return &ownershipCheck{
		db:         db,
		userID:     userID,
		accounts:   make(map[string]bool),
		categories: make(map[string]bool),
	}
}

// build validates in and turns it into a model ready to store.
func (o *ownershipCheck) build(in TransactionInput) (models.Transaction, error) {
	payee := strings.TrimSpace(in.Payee)
	if payee == "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "payee is required")
	}
	if in.Date.IsZero() {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	if !o.accounts[in.AccountID] {
		if _, err := findAccount(o.db, o.userID, in.AccountID); err != nil {
			return models.Transaction{}, err
		}
		o.accounts[in.AccountID] = true
	}

	if in.CategoryID != nil && !o.categories[*in.CategoryID] {
		if _, err := findCategory(o.db, o.userID, *in.CategoryID); err != nil {
			return models.Transaction{}, err
		}
		o.categories[*in.CategoryID] = true
	}

	return models.Transaction{
		Date:       summary.Day(in.Date),
		AccountID:  in.AccountID,
		CategoryID: in.CategoryID,
		Payee:      payee,
		Amount:     in.Amount,
		Notes:      in.Notes,
	}, nil
}
