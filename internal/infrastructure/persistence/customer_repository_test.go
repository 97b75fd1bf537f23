package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone"}).
			AddRow(customerID, "Rahim", "Uddin", "rahim@example.com", "01712345678")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(rows)

		c, err := repo.FindByID(context.Background(), customerID)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, customerID, c.ID)
		assert.Equal(t, "Rahim", c.FirstName)
		assert.Equal(t, "01712345678", c.Phone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing customer", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		customerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), customerID)

		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_Search(t *testing.T) {
	t.Run("matches name, email and phone", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormCustomerRepository(db)

		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone"}).
			AddRow(uuid.New(), "Rahim", "Uddin", "rahim@example.com", "01712345678")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE first_name ILIKE \$1 OR last_name ILIKE \$2 OR email ILIKE \$3 OR phone ILIKE \$4 ORDER BY created_at DESC LIMIT .*`).
			WithArgs("%rahim%", "%rahim%", "%rahim%", "%rahim%", 20).
			WillReturnRows(rows)

		customers, err := repo.Search(context.Background(), "rahim", 0)

		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Rahim", customers[0].FirstName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
