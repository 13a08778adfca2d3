package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	listTransactionsFn       func(userID string, filter services.TransactionFilter) ([]services.TransactionRow, error)
	getTransactionByIDFn     func(userID, id string) (*models.Transaction, error)
	createTransactionFn      func(userID string, in services.TransactionInput) (*models.Transaction, error)
	bulkCreateTransactionsFn func(userID string, in []services.TransactionInput) ([]models.Transaction, error)
	updateTransactionFn      func(userID, id string, in services.TransactionInput) (*models.Transaction, error)
	deleteTransactionFn      func(userID, id string) error
	bulkDeleteTransactionsFn func(userID string, ids []string) ([]string, error)
}

func txFromInput(id string, in services.TransactionInput) *models.Transaction {
	return &models.Transaction{
		Base:       models.Base{ID: id},
		Date:       in.Date,
		AccountID:  in.AccountID,
		CategoryID: in.CategoryID,
		Payee:      in.Payee,
		Amount:     in.Amount,
		Notes:      in.Notes,
	}
}

func (m *mockTransactionService) ListTransactions(userID string, filter services.TransactionFilter) ([]services.TransactionRow, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(userID, filter)
	}
	return []services.TransactionRow{}, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, id string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, id)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) CreateTransaction(userID string, in services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, in)
	}
	return txFromInput(testTransactionID, in), nil
}

func (m *mockTransactionService) BulkCreateTransactions(userID string, in []services.TransactionInput) ([]models.Transaction, error) {
	if m.bulkCreateTransactionsFn != nil {
		return m.bulkCreateTransactionsFn(userID, in)
	}
	out := make([]models.Transaction, 0, len(in))
	for _, item := range in {
		out = append(out, *txFromInput(testTransactionID, item))
	}
	return out, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, id string, in services.TransactionInput) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, id, in)
	}
	return txFromInput(id, in), nil
}

func (m *mockTransactionService) DeleteTransaction(userID, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, id)
	}
	return nil
}

func (m *mockTransactionService) BulkDeleteTransactions(userID string, ids []string) ([]string, error) {
	if m.bulkDeleteTransactionsFn != nil {
		return m.bulkDeleteTransactionsFn(userID, ids)
	}
	return ids, nil
}

// verify interface compliance
var _ services.TransactionServicer = (*mockTransactionService)(nil)

const testTransactionID = "0190a000-0000-7000-8000-0000000000f1"

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/transactions", injectUserID(testUserID))
	api.GET("", handler.ListTransactions)
	api.GET("/:id", handler.GetTransaction)
	api.POST("", handler.CreateTransaction)
	api.POST("/bulk-create", handler.BulkCreateTransactions)
	api.POST("/bulk-delete", handler.BulkDeleteTransactions)
	api.PATCH("/:id", handler.UpdateTransaction)
	api.DELETE("/:id", handler.DeleteTransaction)
	return r
}

const validTransactionBody = `{"date":"2024-03-05","accountId":"` + testAccountID + `","payee":"Grocer","amount":-2500}`

// --- tests ---

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		var got services.TransactionFilter
		svc := &mockTransactionService{
			listTransactionsFn: func(_ string, filter services.TransactionFilter) ([]services.TransactionRow, error) {
				got = filter
				return []services.TransactionRow{{ID: testTransactionID, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Payee: "Grocer", Amount: -2500, Account: "Checking", AccountID: testAccountID}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions?from=2024-03-01&to=2024-03-31&accountId="+testAccountID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.From != "2024-03-01" || got.To != "2024-03-31" {
			t.Errorf("unexpected period %+v", got)
		}
		if got.AccountID == nil || *got.AccountID != testAccountID {
			t.Errorf("expected account filter, got %v", got.AccountID)
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		row := data[0].(map[string]interface{})
		if row["account"] != "Checking" || row["accountId"] != testAccountID {
			t.Errorf("unexpected row %v", row)
		}
		if row["category"] != nil {
			t.Errorf("expected null category, got %v", row["category"])
		}
	})

	t.Run("no account filter", func(t *testing.T) {
		svc := &mockTransactionService{
			listTransactionsFn: func(_ string, filter services.TransactionFilter) ([]services.TransactionRow, error) {
				if filter.AccountID != nil {
					t.Errorf("expected nil account filter, got %v", *filter.AccountID)
				}
				return []services.TransactionRow{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 0 {
			t.Errorf("expected empty list, got %v", data)
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		svc := &mockTransactionService{
			listTransactionsFn: func(string, services.TransactionFilter) ([]services.TransactionRow, error) {
				return nil, apperrors.ErrInvalidDateRange
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions?from=2024-04-01&to=2024-03-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_DATE_RANGE")
	})

	t.Run("malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions?to=31-03-2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("malformed account id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions?accountId=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &mockTransactionService{getTransactionByIDFn: func(_, _ string) (*models.Transaction, error) {
			return nil, apperrors.ErrTransactionNotFound
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("malformed id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/api/transactions/xyz", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		var got services.TransactionInput
		svc := &mockTransactionService{createTransactionFn: func(_ string, in services.TransactionInput) (*models.Transaction, error) {
			got = in
			return txFromInput(testTransactionID, in), nil
		}}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "POST", "/api/transactions", validTransactionBody)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		if !got.Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, got.Date)
		}
		if got.Amount != -2500 || got.AccountID != testAccountID || got.CategoryID != nil {
			t.Errorf("unexpected input %+v", got)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "CREATE_TRANSACTION" {
			t.Errorf("expected CREATE_TRANSACTION audit entry, got %v", audit.actions)
		}
	})

	t.Run("accepts timestamps", func(t *testing.T) {
		var got services.TransactionInput
		svc := &mockTransactionService{createTransactionFn: func(_ string, in services.TransactionInput) (*models.Transaction, error) {
			got = in
			return txFromInput(testTransactionID, in), nil
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		body := `{"date":"2024-03-05T18:30:00Z","accountId":"` + testAccountID + `","payee":"Grocer","amount":0}`
		rec := doRequest(r, "POST", "/api/transactions", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected day truncation, got %v", got.Date)
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		body := `{"date":"2024-03-05","accountId":"` + testAccountID + `","payee":"Refund","amount":0}`
		rec := doRequest(r, "POST", "/api/transactions", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects bad dates", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		body := `{"date":"05/03/2024","accountId":"` + testAccountID + `","payee":"Grocer","amount":1}`
		rec := doRequest(r, "POST", "/api/transactions", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects missing amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		body := `{"date":"2024-03-05","accountId":"` + testAccountID + `","payee":"Grocer"}`
		rec := doRequest(r, "POST", "/api/transactions", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("foreign account", func(t *testing.T) {
		svc := &mockTransactionService{createTransactionFn: func(string, services.TransactionInput) (*models.Transaction, error) {
			return nil, apperrors.ErrAccountNotFound
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/api/transactions", validTransactionBody)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})
}

func TestTransactionHandler_BulkCreateTransactions(t *testing.T) {
	t.Run("creates all", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/api/transactions/bulk-create", "["+validTransactionBody+","+validTransactionBody+"]")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(data))
		}
	})

	t.Run("one bad date fails the batch", func(t *testing.T) {
		called := false
		svc := &mockTransactionService{bulkCreateTransactionsFn: func(string, []services.TransactionInput) ([]models.Transaction, error) {
			called = true
			return nil, nil
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		bad := `{"date":"nope","accountId":"` + testAccountID + `","payee":"Grocer","amount":1}`
		rec := doRequest(r, "POST", "/api/transactions/bulk-create", "["+validTransactionBody+","+bad+"]")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if called {
			t.Error("service should not be called")
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("replaces fields", func(t *testing.T) {
		var gotID string
		svc := &mockTransactionService{updateTransactionFn: func(_, id string, in services.TransactionInput) (*models.Transaction, error) {
			gotID = id
			return txFromInput(id, in), nil
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/api/transactions/"+testTransactionID, validTransactionBody)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testTransactionID {
			t.Errorf("expected %s, got %s", testTransactionID, gotID)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["payee"] != "Grocer" {
			t.Errorf("unexpected payload %v", data)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockTransactionService{updateTransactionFn: func(string, string, services.TransactionInput) (*models.Transaction, error) {
			return nil, apperrors.ErrTransactionNotFound
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/api/transactions/"+testTransactionID, validTransactionBody)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/api/transactions/"+testTransactionID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["id"] != testTransactionID {
			t.Errorf("expected id echoed, got %v", data)
		}
	})

	t.Run("bulk with nothing owned", func(t *testing.T) {
		svc := &mockTransactionService{bulkDeleteTransactionsFn: func(string, []string) ([]string, error) {
			return []string{}, nil
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/api/transactions/bulk-delete", `{"ids":["`+testTransactionID+`"]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 0 {
			t.Errorf("expected empty list, got %v", data)
		}
	})
}
