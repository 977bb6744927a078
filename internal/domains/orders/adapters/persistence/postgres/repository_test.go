package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation_PgconnError(t *testing.T) {
	err := fmt.Errorf("create order: %w", &pgconn.PgError{
		Code:           uniqueViolation,
		ConstraintName: "idx_orders_order_number",
	})

	require.True(t, isUniqueViolation(err))
}

func TestIsUniqueViolation_TranslatedDuplicateKey(t *testing.T) {
	require.True(t, isUniqueViolation(fmt.Errorf("create order: %w", gorm.ErrDuplicatedKey)))
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	require.False(t, isUniqueViolation(nil))
	require.False(t, isUniqueViolation(errors.New("connection reset")))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
