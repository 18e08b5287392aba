// internal/site/repository_test.go
//
// Unit-tests for site lookups using sqlmock.
//
// Run: go test ./internal/site -v

package site

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func mockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestByHost(t *testing.T) {
	db, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "host", "theme", "mobile_theme", "title", "locale",
		"suspended_at", "deleted_at",
	}).AddRow(7, "example.com", "cool", "plain", "Example", "en_US", nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, host, theme, mobile_theme, title, locale,
               suspended_at, deleted_at
        FROM   site
        WHERE  host = ?
          AND  suspended_at IS NULL
          AND  deleted_at   IS NULL
        LIMIT  1;`,
	)).WithArgs("example.com").WillReturnRows(rows)

	rec, err := ByHost(context.Background(), db, "example.com")
	if err != nil {
		t.Fatalf("ByHost error: %v", err)
	}
	if rec.Theme != "cool" || rec.MobileTheme != "plain" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestSettingsBySite(t *testing.T) {
	db, mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("accent_color", "#00c").
		AddRow("logo", "logo-dark.svg")

	mock.ExpectQuery(regexp.QuoteMeta("FROM    site_theme_setting")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	settings, err := SettingsBySite(context.Background(), db, 7)
	if err != nil {
		t.Fatalf("SettingsBySite error: %v", err)
	}
	if len(settings) != 2 || settings["accent_color"] != "#00c" {
		t.Fatalf("unexpected settings: %#v", settings)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
