package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountRows() []string {
	return []string{
		"id", "username", "phone", "password_hash", "role",
		"business_name", "business_address", "created_at", "updated_at",
	}
}

func TestRepository_GetByPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success - Caterer Variant", func(t *testing.T) {
		rows := sqlmock.NewRows(accountRows()).AddRow(
			"cat-1", "karim", "555-0002", "hash", "caterer",
			"Karim Catering", "12 Market St", time.Now(), time.Now(),
		)

		mock.ExpectQuery(`SELECT .* FROM users WHERE phone = \$1`).
			WithArgs("555-0002").
			WillReturnRows(rows)

		acct, err := repo.GetByPhone(ctx, "555-0002")
		require.NoError(t, err)
		require.NotNil(t, acct)
		require.NotNil(t, acct.Caterer)
		assert.Equal(t, "Karim Catering", acct.Caterer.BusinessName)
	})

	t.Run("Success - User Has No Caterer Profile", func(t *testing.T) {
		rows := sqlmock.NewRows(accountRows()).AddRow(
			"user-1", "amina", "555-0001", "hash", "user",
			nil, nil, time.Now(), time.Now(),
		)

		mock.ExpectQuery(`SELECT .* FROM users WHERE phone = \$1`).
			WithArgs("555-0001").
			WillReturnRows(rows)

		acct, err := repo.GetByPhone(ctx, "555-0001")
		require.NoError(t, err)
		assert.Nil(t, acct.Caterer)
	})

	t.Run("NoRows", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE phone = \$1`).
			WithArgs("555-0009").
			WillReturnError(sql.ErrNoRows)

		acct, err := repo.GetByPhone(ctx, "555-0009")
		assert.NoError(t, err)
		assert.Nil(t, acct)
	})
}

func TestRepository_CreateAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("user-1", "amina", "555-0001", "hash", RoleUser,
				sql.NullString{}, sql.NullString{}).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
				AddRow(time.Now(), time.Now()))

		err := repo.CreateAccount(ctx, &Account{
			ID:           "user-1",
			Username:     "amina",
			Phone:        "555-0001",
			PasswordHash: "hash",
			Role:         RoleUser,
		})
		assert.NoError(t, err)
	})
}

func TestRepository_ListCaterers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(accountRows()).
		AddRow("cat-1", "karim", "555-0002", "hash", "caterer",
			"Karim Catering", "12 Market St", time.Now(), time.Now()).
		AddRow("cat-2", "lea", "555-0003", "hash", "caterer",
			"Lea's Kitchen", "3 Harbor Rd", time.Now(), time.Now())

	mock.ExpectQuery(`SELECT .* FROM users WHERE role = \$1 ORDER BY username ASC`).
		WithArgs(RoleCaterer).
		WillReturnRows(rows)

	caterers, err := repo.ListCaterers(ctx)
	require.NoError(t, err)
	require.Len(t, caterers, 2)
	assert.Equal(t, "cat-1", caterers[0].ID)
	assert.NotNil(t, caterers[1].Caterer)
}
