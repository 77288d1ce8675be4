package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/drs-net/billing-backend/internal/db"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conn, errOpen := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if errOpen != nil {
		t.Fatalf("open sqlite: %v", errOpen)
	}
	sqlDB, errDB := conn.DB()
	if errDB != nil {
		t.Fatalf("sql db: %v", errDB)
	}
	sqlDB.SetMaxOpenConns(1)
	if errMigrate := dbpkg.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	engine := gin.New()
	RegisterRoutes(engine, conn, nil)
	return engine
}

func do(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestVoucherLifecycleOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	if w := do(engine, http.MethodPost, "/voucher", `{"code":"NET-50","packageId":"plan-3"}`); w.Code != http.StatusOK {
		t.Fatalf("issue: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := do(engine, http.MethodPost, "/redeem", `{"code":"NET-50","user":"alice@example.com"}`); w.Code != http.StatusOK {
		t.Fatalf("redeem: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := do(engine, http.MethodPost, "/redeem", `{"code":"NET-50","user":"alice@example.com"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("retry redeem: expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	if w := do(engine, http.MethodPost, "/redeem", `{"code":"TYPO","user":"alice@example.com"}`); w.Code != http.StatusNotFound {
		t.Fatalf("unknown code: expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSummaryAndCrudRoutes(t *testing.T) {
	engine := newTestEngine(t)

	if w := do(engine, http.MethodGet, "/", ""); w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
	if w := do(engine, http.MethodPost, "/register", `{"name":"Alice","email":"alice@example.com","phone":"555-0100"}`); w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := do(engine, http.MethodPost, "/package", `{"name":"Fiber 100","price":29.9,"speed":100,"time":30,"type":"internet"}`); w.Code != http.StatusOK {
		t.Fatalf("create package: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w := do(engine, http.MethodGet, "/packages", ""); w.Code != http.StatusOK {
		t.Fatalf("list packages: expected 200, got %d", w.Code)
	}
	if w := do(engine, http.MethodPost, "/payment", `{"user":"alice@example.com","amount":100}`); w.Code != http.StatusOK {
		t.Fatalf("record payment: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w := do(engine, http.MethodGet, "/reports/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, field := range []string{`"users":1`, `"vouchers":0`, `"totalEarnings":100`} {
		if !strings.Contains(body, field) {
			t.Fatalf("summary body missing %s: %s", field, body)
		}
	}
}
