package db

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/internal/models"
)

const (
	defaultOperatorUsername = "admin"
	defaultOperatorPassword = "admin123"
)

// SeedOperator ensures the default dashboard login exists. Re-running is
// a no-op; an existing operator's password is never touched.
func SeedOperator(gdb *gorm.DB) error {
	var existing models.Operator
	err := gdb.Where("username = ?", defaultOperatorUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed operator lookup: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultOperatorPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed operator hash: %w", err)
	}
	op := models.Operator{Username: defaultOperatorUsername, PasswordHash: string(hash)}
	if err := gdb.Create(&op).Error; err != nil {
		return fmt.Errorf("seed operator create: %w", err)
	}
	return nil
}

// VerifyCredential checks a username/password pair against the operators
// table and returns the operator on success.
func VerifyCredential(gdb *gorm.DB, username, password string) (*models.Operator, bool) {
	var op models.Operator
	if err := gdb.Where("username = ?", username).First(&op).Error; err != nil {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return nil, false
	}
	return &op, true
}

// OperatorExists reports whether an operator id is still present; used as
// the session verifier.
func OperatorExists(gdb *gorm.DB, id uint) bool {
	var count int64
	gdb.Model(&models.Operator{}).Where("id = ?", id).Count(&count)
	return count > 0
}
