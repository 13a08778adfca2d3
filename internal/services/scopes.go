package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/summary"
)

// predicates is an ordered list of GORM scopes shared by the transaction
// list and the summary queries. Methods return a new list and never modify
// the receiver.
type predicates []func(*gorm.DB) *gorm.DB

// userTransactions limits a transactions query to rows on live accounts
// owned by userID.
func userTransactions(userID string) predicates {
	return predicates{func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
			Where("accounts.user_id = ?", userID)
	}}
}

func (p predicates) with(scope func(*gorm.DB) *gorm.DB) predicates {
	return append(p[:len(p):len(p)], scope)
}

// account narrows to a single account. A nil id leaves the list unchanged.
func (p predicates) account(id *string) predicates {
	if id == nil {
		return p
	}
	accountID := *id
	return p.with(func(db *gorm.DB) *gorm.DB {
		return db.Where("transactions.account_id = ?", accountID)
	})
}

// within keeps transactions dated inside the inclusive period.
func (p predicates) within(period summary.Period) predicates {
	start := summary.Day(period.Start)
	end := summary.Day(period.End).AddDate(0, 0, 1)
	return p.with(func(db *gorm.DB) *gorm.DB {
		return db.Where("transactions.date >= ? AND transactions.date < ?", start, end)
	})
}

func (p predicates) expenses() predicates {
	return p.with(func(db *gorm.DB) *gorm.DB {
		return db.Where("transactions.amount < 0")
	})
}

func (p predicates) apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(p...)
}

// resolvePeriod maps summary period errors onto API errors.
func resolvePeriod(from, to string, now time.Time) (summary.Period, error) {
	p, err := summary.ResolvePeriod(from, to, now.UTC())
	switch {
	case errors.Is(err, summary.ErrInvalidRange):
		return summary.Period{}, apperrors.ErrInvalidDateRange
	case errors.Is(err, summary.ErrRangeTooLong):
		return summary.Period{}, apperrors.WithMessage(apperrors.ErrInvalidDateRange, err.Error())
	case err != nil:
		return summary.Period{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return p, nil
}
