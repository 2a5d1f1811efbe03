package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"spendcheck/internal/period"
)

func TestExpenseFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "spender@example.com", "password123")

	today := period.DateKey(time.Now())
	monthKey := period.MonthKey(time.Now())

	t.Run("logging an expense returns the record and a quip", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"amount_cents":1250,"category":"Coffee","note":"latte","date":%q}`, today), token)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["amount_cents"].(float64) != 1250 {
			t.Errorf("expected amount_cents 1250, got %v", expense["amount_cents"])
		}
		if expense["date"] != today {
			t.Errorf("expected date %s, got %v", today, expense["date"])
		}
		quip, ok := result["quip"].(string)
		if !ok || quip == "" {
			t.Error("expected a non-empty quip")
		}
	})

	t.Run("an omitted date defaults to today", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/expenses",
			`{"amount_cents":800,"category":"Snacks"}`, token)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if expense["date"] != today {
			t.Errorf("expected date %s, got %v", today, expense["date"])
		}
	})

	t.Run("a zero amount is rejected before anything is stored", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/expenses",
			`{"amount_cents":0,"category":"Coffee"}`, token)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}

		list := app.request("GET", "/api/v1/expenses", "", token)
		if parseJSON(t, list)["total_items"].(float64) != 2 {
			t.Error("rejected expense must not be stored")
		}
	})

	t.Run("listing returns newest first", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/expenses", "", token)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(data))
		}
	})

	t.Run("deleting an expense removes it and deleting again is a no-op", func(t *testing.T) {
		id := app.addExpense(t, token, today, "Impulse", 9999)

		rec := app.request("DELETE", "/api/v1/expenses/"+id, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = app.request("DELETE", "/api/v1/expenses/"+id, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected repeated delete to return 200, got %d", rec.Code)
		}

		list := app.request("GET", "/api/v1/expenses", "", token)
		if parseJSON(t, list)["total_items"].(float64) != 2 {
			t.Error("expected the deleted expense to be gone")
		}
	})

	t.Run("resetting a month deletes only that month", func(t *testing.T) {
		app.addExpense(t, token, "1999-12-31", "Y2K Party", 50000)

		rec := app.request("DELETE", "/api/v1/months/1999-12/expenses", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		list := app.request("GET", "/api/v1/expenses", "", token)
		result := parseJSON(t, list)
		if result["total_items"].(float64) != 2 {
			t.Errorf("expected current month's expenses to survive, got %v items", result["total_items"])
		}
		for _, item := range result["data"].([]interface{}) {
			expense := item.(map[string]interface{})
			if expense["date"].(string)[:7] != monthKey {
				t.Errorf("expected only %s expenses, found %v", monthKey, expense["date"])
			}
		}
	})

	t.Run("expenses are scoped to the user who logged them", func(t *testing.T) {
		otherToken, _ := app.registerUser(t, "other@example.com", "password123")

		list := app.request("GET", "/api/v1/expenses", "", otherToken)
		if parseJSON(t, list)["total_items"].(float64) != 0 {
			t.Error("expected a fresh user to see no expenses")
		}
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/expenses", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestFeedbackToneFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "moody@example.com", "password123")

	t.Run("tone defaults to balanced", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/profile", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["feedback_tone"] != "balanced" {
			t.Errorf("expected balanced, got %v", user["feedback_tone"])
		}
	})

	t.Run("tone can be changed", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/profile", `{"feedback_tone":"savage"}`, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["feedback_tone"] != "savage" {
			t.Errorf("expected savage, got %v", user["feedback_tone"])
		}
	})

	t.Run("unknown tones are rejected", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/profile", `{"feedback_tone":"passive-aggressive"}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
