package services

import (
	"testing"
	"time"

	"finboard/internal/models"
	"finboard/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestCreateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, fixedNow(t, "2024-01-31"))
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)
	category := testutil.CreateTestCategory(t, db, user.ID)
	foreignAccount := testutil.CreateTestAccount(t, db, other.ID)
	foreignCategory := testutil.CreateTestCategory(t, db, other.ID)

	t.Run("valid", func(t *testing.T) {
		in := TransactionInput{
			Date:       time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC),
			AccountID:  account.ID,
			CategoryID: &category.ID,
			Payee:      "Grocer",
			Amount:     -2599,
			Notes:      strPtr("weekly shop"),
		}
		tx, err := svc.CreateTransaction(user.ID, in)
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected transaction ID")
		}
		if !tx.Date.Equal(testutil.Date(t, "2024-01-15")) {
			t.Errorf("expected date truncated to the day, got %v", tx.Date)
		}
		if tx.Amount != -2599 {
			t.Errorf("expected amount -2599, got %d", tx.Amount)
		}
	})

	t.Run("foreign_account", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, TransactionInput{
			Date: testutil.Date(t, "2024-01-15"), AccountID: foreignAccount.ID, Payee: "X", Amount: 1,
		})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("foreign_category", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, TransactionInput{
			Date: testutil.Date(t, "2024-01-15"), AccountID: account.ID, CategoryID: &foreignCategory.ID, Payee: "X", Amount: 1,
		})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("blank_payee", func(t *testing.T) {
		_, err := svc.CreateTransaction(user.ID, TransactionInput{
			Date: testutil.Date(t, "2024-01-15"), AccountID: account.ID, Payee: " ", Amount: 1,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestBulkCreateTransactions(t *testing.T) {
	t.Run("all_created", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, nil)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		in := []TransactionInput{
			{Date: testutil.Date(t, "2024-01-01"), AccountID: account.ID, Payee: "A", Amount: 100},
			{Date: testutil.Date(t, "2024-01-02"), AccountID: account.ID, Payee: "B", Amount: -50},
		}
		created, err := svc.BulkCreateTransactions(user.ID, in)
		testutil.AssertNoError(t, err)

		if len(created) != 2 {
			t.Fatalf("expected 2 created, got %d", len(created))
		}
		if created[0].ID == "" || created[0].ID == created[1].ID {
			t.Errorf("expected distinct ids, got %q and %q", created[0].ID, created[1].ID)
		}
	})

	t.Run("all_or_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, nil)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		foreign := testutil.CreateTestAccount(t, db, other.ID)

		in := []TransactionInput{
			{Date: testutil.Date(t, "2024-01-01"), AccountID: account.ID, Payee: "A", Amount: 100},
			{Date: testutil.Date(t, "2024-01-02"), AccountID: foreign.ID, Payee: "B", Amount: -50},
		}
		_, err := svc.BulkCreateTransactions(user.ID, in)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no transactions stored, got %d", count)
		}
	})
}

func TestListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, fixedNow(t, "2024-01-31"))
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	checking := testutil.CreateTestAccount(t, db, user.ID)
	savings := testutil.CreateTestAccount(t, db, user.ID)
	foreign := testutil.CreateTestAccount(t, db, other.ID)
	food := testutil.CreateTestCategoryWithName(t, db, user.ID, "Food")

	older := testutil.CreateTestTransaction(t, db, checking.ID, &food.ID, -100, testutil.Date(t, "2024-01-05"))
	newer := testutil.CreateTestTransaction(t, db, savings.ID, nil, 200, testutil.Date(t, "2024-01-20"))
	testutil.CreateTestTransaction(t, db, checking.ID, nil, 300, testutil.Date(t, "2023-11-01"))
	testutil.CreateTestTransaction(t, db, foreign.ID, nil, 400, testutil.Date(t, "2024-01-10"))

	t.Run("default_period_newest_first", func(t *testing.T) {
		rows, err := svc.ListTransactions(user.ID, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].ID != newer.ID || rows[1].ID != older.ID {
			t.Errorf("expected newest first, got %s then %s", rows[0].ID, rows[1].ID)
		}
		if rows[1].Category == nil || *rows[1].Category != "Food" {
			t.Errorf("expected category Food, got %v", rows[1].Category)
		}
		if rows[0].Category != nil {
			t.Errorf("expected uncategorized row, got %v", *rows[0].Category)
		}
		if rows[0].Account != savings.Name {
			t.Errorf("expected account name %s, got %s", savings.Name, rows[0].Account)
		}
	})

	t.Run("account_filter", func(t *testing.T) {
		rows, err := svc.ListTransactions(user.ID, TransactionFilter{AccountID: &checking.ID})
		testutil.AssertNoError(t, err)
		if len(rows) != 1 || rows[0].ID != older.ID {
			t.Errorf("expected only %s, got %+v", older.ID, rows)
		}
	})

	t.Run("explicit_period", func(t *testing.T) {
		rows, err := svc.ListTransactions(user.ID, TransactionFilter{From: "2023-10-01", To: "2023-12-31"})
		testutil.AssertNoError(t, err)
		if len(rows) != 1 || rows[0].Amount != 300 {
			t.Errorf("expected the November transaction, got %+v", rows)
		}
	})

	t.Run("inverted_period", func(t *testing.T) {
		_, err := svc.ListTransactions(user.ID, TransactionFilter{From: "2024-02-01", To: "2024-01-01"})
		testutil.AssertAppError(t, err, "INVALID_DATE_RANGE")
	})
}

func TestUpdateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, nil)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)
	category := testutil.CreateTestCategory(t, db, user.ID)
	tx := testutil.CreateTestTransaction(t, db, account.ID, &category.ID, -100, testutil.Date(t, "2024-01-05"))

	t.Run("full_replacement", func(t *testing.T) {
		got, err := svc.UpdateTransaction(user.ID, tx.ID, TransactionInput{
			Date:      testutil.Date(t, "2024-01-06"),
			AccountID: account.ID,
			Payee:     "Refund",
			Amount:    250,
		})
		testutil.AssertNoError(t, err)
		if got.ID != tx.ID {
			t.Errorf("expected id %s, got %s", tx.ID, got.ID)
		}

		reloaded, err := svc.GetTransactionByID(user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		if reloaded.Payee != "Refund" || reloaded.Amount != 250 {
			t.Errorf("unexpected stored transaction %+v", reloaded)
		}
		if reloaded.CategoryID != nil {
			t.Errorf("expected category cleared, got %v", *reloaded.CategoryID)
		}
	})

	t.Run("other_user", func(t *testing.T) {
		_, err := svc.UpdateTransaction(other.ID, tx.ID, TransactionInput{
			Date: testutil.Date(t, "2024-01-06"), AccountID: account.ID, Payee: "X", Amount: 1,
		})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, nil)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)
	tx := testutil.CreateTestTransaction(t, db, account.ID, nil, -100, testutil.Date(t, "2024-01-05"))

	err := svc.DeleteTransaction(other.ID, tx.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteTransaction(user.ID, tx.ID))

	_, err = svc.GetTransactionByID(user.ID, tx.ID)
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestBulkDeleteTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db, nil)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)
	foreignAccount := testutil.CreateTestAccount(t, db, other.ID)
	day := testutil.Date(t, "2024-01-05")

	a := testutil.CreateTestTransaction(t, db, account.ID, nil, -1, day)
	b := testutil.CreateTestTransaction(t, db, account.ID, nil, -2, day)
	foreign := testutil.CreateTestTransaction(t, db, foreignAccount.ID, nil, -3, day)

	deleted, err := svc.BulkDeleteTransactions(user.ID, []string{a.ID, b.ID, foreign.ID})
	testutil.AssertNoError(t, err)

	if len(deleted) != 2 {
		t.Fatalf("expected 2 deleted, got %v", deleted)
	}
	if _, err := svc.GetTransactionByID(other.ID, foreign.ID); err != nil {
		t.Errorf("another user's transaction must survive: %v", err)
	}
}
