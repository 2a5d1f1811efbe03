package integration

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"spendcheck/internal/period"
)

func TestBudgetFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "budgeter@example.com", "password123")

	monthKey := period.MonthKey(time.Now())

	t.Run("a month starts with no limit", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budgets/"+monthKey, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["limit_cents"].(float64) != 0 {
			t.Errorf("expected 0, got %v", budget["limit_cents"])
		}
	})

	t.Run("setting a limit stores it", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budgets/"+monthKey, `{"limit_cents":60000}`, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", "/api/v1/budgets/"+monthKey, "", token)
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["limit_cents"].(float64) != 60000 {
			t.Errorf("expected 60000, got %v", budget["limit_cents"])
		}
	})

	t.Run("setting again replaces the previous limit", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budgets/"+monthKey, `{"limit_cents":75000}`, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", "/api/v1/budgets/"+monthKey, "", token)
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["limit_cents"].(float64) != 75000 {
			t.Errorf("expected 75000, got %v", budget["limit_cents"])
		}
	})

	t.Run("a non-positive limit is rejected and the old one survives", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budgets/"+monthKey, `{"limit_cents":-100}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}

		rec = app.request("GET", "/api/v1/budgets/"+monthKey, "", token)
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["limit_cents"].(float64) != 75000 {
			t.Errorf("expected previous limit 75000 to survive, got %v", budget["limit_cents"])
		}
	})

	t.Run("a malformed month key is rejected", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budgets/March-2025", `{"limit_cents":60000}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("months are independent of each other", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/budgets/1999-01", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["limit_cents"].(float64) != 0 {
			t.Errorf("expected no inherited limit, got %v", budget["limit_cents"])
		}
	})
}

func TestSummaryFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "watcher@example.com", "password123")

	now := time.Now()
	today := period.DateKey(now)
	monthKey := period.MonthKey(now)

	t.Run("an empty month with no budget prompts to set one", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/summary", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["month_key"] != monthKey {
			t.Errorf("expected month %s, got %v", monthKey, result["month_key"])
		}
		budget := result["budget"].(map[string]interface{})
		if budget["set"].(bool) {
			t.Error("expected no budget to be set")
		}
		if !strings.Contains(budget["message"].(string), "No budget set") {
			t.Errorf("expected the set-a-budget prompt, got %q", budget["message"])
		}
	})

	t.Run("spending against a limit is evaluated", func(t *testing.T) {
		rec := app.request("PUT", "/api/v1/budgets/"+monthKey, `{"limit_cents":60000}`, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed to set budget: %d", rec.Code)
		}
		app.addExpense(t, token, today, "Food", 42000)
		app.addExpense(t, token, today, "Coffee", 23050)

		rec = app.request("GET", "/api/v1/summary?range=month", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["range_total_cents"].(float64) != 65050 {
			t.Errorf("expected range total 65050, got %v", result["range_total_cents"])
		}
		if result["today_total_cents"].(float64) != 65050 {
			t.Errorf("expected today total 65050, got %v", result["today_total_cents"])
		}
		budget := result["budget"].(map[string]interface{})
		if budget["tier"] != "over-mild" {
			t.Errorf("expected over-mild, got %v", budget["tier"])
		}
		if budget["over_by_cents"].(float64) != 5050 {
			t.Errorf("expected over_by 5050, got %v", budget["over_by_cents"])
		}
		if budget["bar_percent"].(float64) != 100 {
			t.Errorf("expected bar clamped to 100, got %v", budget["bar_percent"])
		}
	})

	t.Run("the day range only counts today", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/summary?range=day", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["range"] != "day" {
			t.Errorf("expected day range, got %v", result["range"])
		}
		if result["range_start"] != today || result["range_end"] != today {
			t.Errorf("expected a single-day window, got %v..%v", result["range_start"], result["range_end"])
		}
	})

	t.Run("an unknown range is rejected", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/summary?range=decade", "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("the export rolls up categories largest first", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/summary/export", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected text/csv, got %q", ct)
		}

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected 4 CSV lines, got %d: %q", len(lines), rec.Body.String())
		}
		if strings.TrimSpace(lines[0]) != "Category,Total" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if strings.TrimSpace(lines[1]) != "Food,420.00" {
			t.Errorf("expected the biggest category first, got %q", lines[1])
		}
		if strings.TrimSpace(lines[2]) != "Coffee,230.50" {
			t.Errorf("unexpected second row: %q", lines[2])
		}
		if strings.TrimSpace(lines[3]) != "Total,650.50" {
			t.Errorf("unexpected grand total: %q", lines[3])
		}
	})
}
