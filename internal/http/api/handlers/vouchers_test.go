package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/drs-net/billing-backend/internal/db"
	"github.com/drs-net/billing-backend/internal/voucher"
)

func openHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return conn
}

func postJSON(t *testing.T, handler gin.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestRedeemUnknownCodeReturns404(t *testing.T) {
	conn := openHandlerTestDB(t)
	h := NewVoucherHandler(voucher.NewLedger(conn))

	w := postJSON(t, h.Redeem, "/redeem", `{"code":"MISSING","user":"alice@example.com"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRedeemTwiceReturns200Then400(t *testing.T) {
	conn := openHandlerTestDB(t)
	h := NewVoucherHandler(voucher.NewLedger(conn))

	if w := postJSON(t, h.Issue, "/voucher", `{"code":"TV-1","packageId":"plan-9"}`); w.Code != http.StatusOK {
		t.Fatalf("issue: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	first := postJSON(t, h.Redeem, "/redeem", `{"code":"TV-1","user":"alice@example.com"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first redeem: expected 200, got %d body=%s", first.Code, first.Body.String())
	}
	second := postJSON(t, h.Redeem, "/redeem", `{"code":"TV-1","user":"alice@example.com"}`)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("second redeem: expected 400, got %d body=%s", second.Code, second.Body.String())
	}
	if !strings.Contains(second.Body.String(), "already used") {
		t.Fatalf("expected already used reason, got %s", second.Body.String())
	}
}

func TestIssueDuplicateCodeReturns409(t *testing.T) {
	conn := openHandlerTestDB(t)
	h := NewVoucherHandler(voucher.NewLedger(conn))

	if w := postJSON(t, h.Issue, "/voucher", `{"code":"DUP-9","packageId":"plan-1"}`); w.Code != http.StatusOK {
		t.Fatalf("issue: expected 200, got %d", w.Code)
	}
	w := postJSON(t, h.Issue, "/voucher", `{"code":"DUP-9","packageId":"plan-2"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate issue: expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRedeemMissingFieldsReturns400(t *testing.T) {
	conn := openHandlerTestDB(t)
	h := NewVoucherHandler(voucher.NewLedger(conn))

	if w := postJSON(t, h.Redeem, "/redeem", `{"user":"alice@example.com"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing code: expected 400, got %d", w.Code)
	}
	if w := postJSON(t, h.Redeem, "/redeem", `{"code":"X-1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing user: expected 400, got %d", w.Code)
	}
}
