package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/summary"
)

const (
	incomeExpr   = "CAST(COALESCE(SUM(CASE WHEN transactions.amount >= 0 THEN transactions.amount ELSE 0 END), 0) AS BIGINT)"
	expensesExpr = "CAST(COALESCE(SUM(CASE WHEN transactions.amount < 0 THEN transactions.amount ELSE 0 END), 0) AS BIGINT)"
	netExpr      = "CAST(COALESCE(SUM(transactions.amount), 0) AS BIGINT)"
)

// summaryService aggregates the dashboard summary.
type summaryService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSummaryService creates a new SummaryServicer. now supplies today's date
// for the default period; nil means time.Now.
func NewSummaryService(db *gorm.DB, now func() time.Time) SummaryServicer {
	if now == nil {
		now = time.Now
	}
	return &summaryService{db: db, now: now}
}

// GetSummary computes totals for the requested period and the one before it,
// the spending breakdown by category and the gap-free daily series. The four
// queries run concurrently; the first failure cancels the rest.
func (s *summaryService) GetSummary(ctx context.Context, userID string, q SummaryQuery) (*summary.Summary, error) {
	period, err := resolvePeriod(q.From, q.To, s.now())
	if err != nil {
		return nil, err
	}

	scope := userTransactions(userID).account(q.AccountID)

	var (
		current, previous summary.Totals
		categories        []summary.CategoryTotal
		days              []summary.DayTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.totals(gctx, scope.within(period))
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.totals(gctx, scope.within(period.Previous()))
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories(gctx, scope.within(period).expenses())
		return err
	})
	g.Go(func() error {
		var err error
		days, err = s.days(gctx, scope.within(period))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return summary.Build(period, current, previous, categories, days), nil
}

func (s *summaryService) query(ctx context.Context, p predicates) *gorm.DB {
	return p.apply(s.db.WithContext(ctx).Model(&models.Transaction{}))
}

func (s *summaryService) totals(ctx context.Context, p predicates) (summary.Totals, error) {
	var row struct {
		Income    int64
		Expenses  int64
		Remaining int64
	}
	err := s.query(ctx, p).
		Select(incomeExpr + " AS income, " + expensesExpr + " AS expenses, " + netExpr + " AS remaining").
		Scan(&row).Error
	if err != nil {
		return summary.Totals{}, err
	}
	return summary.Totals{Income: row.Income, Expenses: row.Expenses, Remaining: row.Remaining}, nil
}

func (s *summaryService) categories(ctx context.Context, p predicates) ([]summary.CategoryTotal, error) {
	var rows []summary.CategoryTotal
	err := s.query(ctx, p).
		Select("categories.name AS name, " + netExpr + " AS value").
		Joins("JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Group("categories.name").
		Order("SUM(ABS(transactions.amount)) DESC, categories.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *summaryService) days(ctx context.Context, p predicates) ([]summary.DayTotal, error) {
	var rows []struct {
		Date     time.Time
		Income   int64
		Expenses int64
	}
	err := s.query(ctx, p).
		Select("transactions.date AS date, " + incomeExpr + " AS income, " + expensesExpr + " AS expenses").
		Group("transactions.date").
		Order("transactions.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	days := make([]summary.DayTotal, 0, len(rows))
	for _, r := range rows {
		days = append(days, summary.DayTotal{Date: r.Date.UTC(), Income: r.Income, Expenses: r.Expenses})
	}
	return days, nil
}
