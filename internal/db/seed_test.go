package db

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AutoMigrate(&models.HealthRecord{}, &models.Operator{}); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSeedOperatorIdempotent(t *testing.T) {
	d := setupTestDB(t)
	if err := SeedOperator(d); err != nil {
		t.Fatal(err)
	}
	if err := SeedOperator(d); err != nil {
		t.Fatal(err)
	}
	var count int64
	d.Model(&models.Operator{}).Where("username = ?", "admin").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one admin operator, got %d", count)
	}
}

func TestSeedOperatorKeepsExistingPassword(t *testing.T) {
	d := setupTestDB(t)
	if err := SeedOperator(d); err != nil {
		t.Fatal(err)
	}
	var before models.Operator
	d.Where("username = ?", "admin").First(&before)
	if err := SeedOperator(d); err != nil {
		t.Fatal(err)
	}
	var after models.Operator
	d.Where("username = ?", "admin").First(&after)
	if before.PasswordHash != after.PasswordHash {
		t.Fatal("reseeding must not rotate the stored hash")
	}
}

func TestVerifyCredential(t *testing.T) {
	d := setupTestDB(t)
	if err := SeedOperator(d); err != nil {
		t.Fatal(err)
	}
	op, ok := VerifyCredential(d, "admin", "admin123")
	if !ok {
		t.Fatal("expected default credential to verify")
	}
	if op.Username != "admin" {
		t.Fatalf("unexpected operator %q", op.Username)
	}
	if _, ok := VerifyCredential(d, "admin", "wrong"); ok {
		t.Fatal("wrong password accepted")
	}
	if _, ok := VerifyCredential(d, "ghost", "admin123"); ok {
		t.Fatal("unknown user accepted")
	}
}

func TestNormalizeDSN(t *testing.T) {
	if got := NormalizeDSN(""); got != "healthbuddy.db" {
		t.Fatalf("empty dsn = %q", got)
	}
	if got := NormalizeDSN(` "records.db" `); got != "records.db" {
		t.Fatalf("quoted dsn = %q", got)
	}
	if !IsPostgres("postgres://u:p@localhost/db") {
		t.Fatal("postgres URL not detected")
	}
	if IsPostgres("records.db") {
		t.Fatal("sqlite path detected as postgres")
	}
}
