package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finboard/internal/models"
	"finboard/internal/password"
	"finboard/internal/uuid"

	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// FastHashParams keeps argon2id cheap in tests.
var FastHashParams = password.Params{MemoryKiB: 64, Time: 1, Threads: 1}

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date parses a yyyy-MM-dd string as UTC midnight, failing the test on error.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := password.NewHasher(FastHashParams).Hash(TestPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	id, err := uuid.NewOpaque(10)
	if err != nil {
		t.Fatalf("failed to generate user id: %v", err)
	}

	user := &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account owned by userID.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID: userID,
		Name:   fmt.Sprintf("Test Account %d", nextID()),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category owned by userID.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a named category owned by userID.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given signed amount (in
// minor units) on date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID string, categoryID *string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID:  accountID,
		CategoryID: categoryID,
		Payee:      fmt.Sprintf("Payee %d", nextID()),
		Amount:     amount,
		Date:       date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSession creates a session for userID expiring at expiresAt.
func CreateTestSession(t *testing.T, db *gorm.DB, userID string, expiresAt time.Time) *models.Session {
	t.Helper()

	id, err := uuid.NewOpaque(15)
	if err != nil {
		t.Fatalf("failed to generate session id: %v", err)
	}
	session := &models.Session{ID: id, UserID: userID, ExpiresAt: expiresAt}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}
