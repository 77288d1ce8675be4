package report

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbpkg "github.com/drs-net/billing-backend/internal/db"
	"github.com/drs-net/billing-backend/internal/models"
)

func openReportTestDB(t *testing.T) *gorm.DB {
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

func TestSummarizeEmptyCollections(t *testing.T) {
	conn := openReportTestDB(t)

	summary, errSummarize := NewAggregator(conn).Summarize(context.Background())
	if errSummarize != nil {
		t.Fatalf("summarize: %v", errSummarize)
	}
	if summary.UserCount != 0 || summary.VoucherCount != 0 || summary.TotalEarnings != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestSummarizeSkipsNonNumericAmounts(t *testing.T) {
	conn := openReportTestDB(t)

	users := []models.User{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	}
	if errCreate := conn.Create(&users).Error; errCreate != nil {
		t.Fatalf("create users: %v", errCreate)
	}
	if errCreate := conn.Create(&models.Voucher{Code: "V-1", PlanID: "plan-1"}).Error; errCreate != nil {
		t.Fatalf("create voucher: %v", errCreate)
	}

	payments := []models.Payment{
		{Reference: "p-1", Amount: datatypes.JSON([]byte(`100`))},
		{Reference: "p-2", Amount: datatypes.JSON([]byte(`"bad"`))},
		{Reference: "p-3", Amount: datatypes.JSON([]byte(`50`))},
		{Reference: "p-4"}, // amount absent
		{Reference: "p-5", Amount: datatypes.JSON([]byte(`null`))},
	}
	if errCreate := conn.Create(&payments).Error; errCreate != nil {
		t.Fatalf("create payments: %v", errCreate)
	}

	summary, errSummarize := NewAggregator(conn).Summarize(context.Background())
	if errSummarize != nil {
		t.Fatalf("summarize: %v", errSummarize)
	}
	if summary.UserCount != 2 {
		t.Fatalf("expected 2 users, got %d", summary.UserCount)
	}
	if summary.VoucherCount != 1 {
		t.Fatalf("expected 1 voucher, got %d", summary.VoucherCount)
	}
	if summary.TotalEarnings != 150 {
		t.Fatalf("expected total earnings 150, got %v", summary.TotalEarnings)
	}
}

func TestAmountValueTolerance(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "integer", raw: `100`, want: 100},
		{name: "fractional", raw: `12.5`, want: 12.5},
		{name: "quoted string", raw: `"100"`, want: 0},
		{name: "object", raw: `{"value":100}`, want: 0},
		{name: "null", raw: `null`, want: 0},
		{name: "garbage", raw: `not-json`, want: 0},
		{name: "empty", raw: ``, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := amountValue(datatypes.JSON([]byte(tc.raw)))
			if got != tc.want {
				t.Fatalf("amountValue(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
