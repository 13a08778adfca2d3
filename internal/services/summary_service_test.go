package services

import (
	"context"
	"testing"
	"time"

	"finboard/internal/summary"
	"finboard/internal/testutil"
)

func fixedNow(t *testing.T, day string) func() time.Time {
	t.Helper()
	d := testutil.Date(t, day).Add(15 * time.Hour)
	return func() time.Time { return d }
}

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSummaryService(db, fixedNow(t, "2024-01-31"))

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	checking := testutil.CreateTestAccount(t, db, user.ID)
	savings := testutil.CreateTestAccount(t, db, user.ID)
	foreign := testutil.CreateTestAccount(t, db, other.ID)

	rent := testutil.CreateTestCategoryWithName(t, db, user.ID, "Rent")
	food := testutil.CreateTestCategoryWithName(t, db, user.ID, "Food")
	fun := testutil.CreateTestCategoryWithName(t, db, user.ID, "Fun")
	travel := testutil.CreateTestCategoryWithName(t, db, user.ID, "Travel")
	gifts := testutil.CreateTestCategoryWithName(t, db, user.ID, "Gifts")

	// Current period 2024-01-10 .. 2024-01-12, previous 2024-01-07 .. 2024-01-09.
	testutil.CreateTestTransaction(t, db, checking.ID, nil, 10000, testutil.Date(t, "2024-01-10"))
	testutil.CreateTestTransaction(t, db, checking.ID, &rent.ID, -5000, testutil.Date(t, "2024-01-10"))
	testutil.CreateTestTransaction(t, db, checking.ID, &food.ID, -2000, testutil.Date(t, "2024-01-12"))
	testutil.CreateTestTransaction(t, db, savings.ID, &fun.ID, -1000, testutil.Date(t, "2024-01-12"))
	testutil.CreateTestTransaction(t, db, savings.ID, &travel.ID, -300, testutil.Date(t, "2024-01-12"))
	testutil.CreateTestTransaction(t, db, savings.ID, &gifts.ID, -200, testutil.Date(t, "2024-01-12"))
	testutil.CreateTestTransaction(t, db, checking.ID, nil, 5000, testutil.Date(t, "2024-01-08"))
	testutil.CreateTestTransaction(t, db, checking.ID, &rent.ID, -4000, testutil.Date(t, "2024-01-09"))
	testutil.CreateTestTransaction(t, db, foreign.ID, nil, 99999, testutil.Date(t, "2024-01-11"))

	q := SummaryQuery{From: "2024-01-10", To: "2024-01-12"}

	t.Run("totals_and_changes", func(t *testing.T) {
		got, err := svc.GetSummary(context.Background(), user.ID, q)
		testutil.AssertNoError(t, err)

		if got.IncomeAmount != 10000 {
			t.Errorf("income = %d, want 10000", got.IncomeAmount)
		}
		if got.ExpensesAmount != -8500 {
			t.Errorf("expenses = %d, want -8500", got.ExpensesAmount)
		}
		if got.RemainingAmount != 1500 {
			t.Errorf("remaining = %d, want 1500", got.RemainingAmount)
		}
		if got.IncomeChange != 100 {
			t.Errorf("income change = %v, want 100", got.IncomeChange)
		}
		if got.ExpensesChange != -112.5 {
			t.Errorf("expenses change = %v, want -112.5", got.ExpensesChange)
		}
		if got.RemainingChange != 50 {
			t.Errorf("remaining change = %v, want 50", got.RemainingChange)
		}
	})

	t.Run("categories_rolled_up", func(t *testing.T) {
		got, err := svc.GetSummary(context.Background(), user.ID, q)
		testutil.AssertNoError(t, err)

		want := []summary.CategoryTotal{
			{Name: "Rent", Value: -5000},
			{Name: "Food", Value: -2000},
			{Name: "Fun", Value: -1000},
			{Name: summary.OtherCategory, Value: -500},
		}
		if len(got.Categories) != len(want) {
			t.Fatalf("categories = %v, want %v", got.Categories, want)
		}
		for i := range want {
			if got.Categories[i] != want[i] {
				t.Errorf("category[%d] = %v, want %v", i, got.Categories[i], want[i])
			}
		}
	})

	t.Run("days_gap_filled", func(t *testing.T) {
		got, err := svc.GetSummary(context.Background(), user.ID, q)
		testutil.AssertNoError(t, err)

		if len(got.Days) != 3 {
			t.Fatalf("expected 3 days, got %d", len(got.Days))
		}
		wantDates := []string{"2024-01-10", "2024-01-11", "2024-01-12"}
		for i, d := range got.Days {
			if d.Date.Format(summary.DateLayout) != wantDates[i] {
				t.Errorf("day[%d] = %s, want %s", i, d.Date.Format(summary.DateLayout), wantDates[i])
			}
		}
		if got.Days[0].Income != 10000 || got.Days[0].Expenses != -5000 {
			t.Errorf("unexpected first day %+v", got.Days[0])
		}
		if got.Days[1].Income != 0 || got.Days[1].Expenses != 0 {
			t.Errorf("expected empty middle day, got %+v", got.Days[1])
		}
		if got.Days[2].Expenses != -3500 {
			t.Errorf("expected -3500 on last day, got %d", got.Days[2].Expenses)
		}
	})

	t.Run("account_filter", func(t *testing.T) {
		got, err := svc.GetSummary(context.Background(), user.ID, SummaryQuery{From: q.From, To: q.To, AccountID: &savings.ID})
		testutil.AssertNoError(t, err)

		if got.IncomeAmount != 0 || got.ExpensesAmount != -1500 {
			t.Errorf("unexpected savings totals income=%d expenses=%d", got.IncomeAmount, got.ExpensesAmount)
		}
		if len(got.Categories) != 3 {
			t.Errorf("expected 3 categories without rollup, got %v", got.Categories)
		}
	})

	t.Run("default_period", func(t *testing.T) {
		got, err := svc.GetSummary(context.Background(), user.ID, SummaryQuery{})
		testutil.AssertNoError(t, err)

		if len(got.Days) != summary.DefaultWindowDays+1 {
			t.Errorf("expected %d days, got %d", summary.DefaultWindowDays+1, len(got.Days))
		}
		if got.Days[len(got.Days)-1].Date.Format(summary.DateLayout) != "2024-01-31" {
			t.Errorf("expected series to end today, got %v", got.Days[len(got.Days)-1].Date)
		}
	})

	t.Run("invalid_dates", func(t *testing.T) {
		_, err := svc.GetSummary(context.Background(), user.ID, SummaryQuery{From: "yesterday"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.GetSummary(context.Background(), user.ID, SummaryQuery{From: "2024-01-12", To: "2024-01-10"})
		testutil.AssertAppError(t, err, "INVALID_DATE_RANGE")
	})
}

func TestGetSummary_EmptyUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSummaryService(db, fixedNow(t, "2024-01-31"))
	user := testutil.CreateTestUser(t, db)

	got, err := svc.GetSummary(context.Background(), user.ID, SummaryQuery{From: "2024-01-01", To: "2024-01-07"})
	testutil.AssertNoError(t, err)

	if got.IncomeAmount != 0 || got.ExpensesAmount != 0 || got.RemainingAmount != 0 {
		t.Errorf("expected zero totals, got %+v", got)
	}
	if got.RemainingChange != 0 {
		t.Errorf("expected zero change, got %v", got.RemainingChange)
	}
	if len(got.Categories) != 0 {
		t.Errorf("expected no categories, got %v", got.Categories)
	}
	if len(got.Days) != 7 {
		t.Errorf("expected 7 zero days, got %d", len(got.Days))
	}
}

func TestGetSummary_DeletedAccountHidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSummaryService(db, fixedNow(t, "2024-01-31"))
	accounts := NewAccountService(db)
	user := testutil.CreateTestUser(t, db)
	keep := testutil.CreateTestAccount(t, db, user.ID)
	drop := testutil.CreateTestAccount(t, db, user.ID)

	testutil.CreateTestTransaction(t, db, keep.ID, nil, 100, testutil.Date(t, "2024-01-15"))
	testutil.CreateTestTransaction(t, db, drop.ID, nil, 900, testutil.Date(t, "2024-01-15"))

	testutil.AssertNoError(t, accounts.DeleteAccount(user.ID, drop.ID))

	got, err := svc.GetSummary(context.Background(), user.ID, SummaryQuery{})
	testutil.AssertNoError(t, err)
	if got.IncomeAmount != 100 {
		t.Errorf("expected income 100 after account delete, got %d", got.IncomeAmount)
	}
}

func TestGetSummary_Canceled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSummaryService(db, fixedNow(t, "2024-01-31"))
	user := testutil.CreateTestUser(t, db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetSummary(ctx, user.ID, SummaryQuery{})
	testutil.AssertAppError(t, err, "INTERNAL_ERROR")
}
