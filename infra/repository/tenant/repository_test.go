package tenant

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/marketplace/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTenantRepository_UpdateByStripeAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}

	submitted := true

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tenants" SET`).
		WithArgs(true, sqlmock.AnyArg(), "acct_9").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.UpdateByStripeAccount(context.Background(), "acct_9", &dto.TenantUpdate{
		StripeDetailsSubmitted: &submitted,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_UpdateByStripeAccount_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}

	submitted := true

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tenants" SET`).
		WithArgs(true, sqlmock.AnyArg(), "acct_unknown").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.UpdateByStripeAccount(context.Background(), "acct_unknown", &dto.TenantUpdate{
		StripeDetailsSubmitted: &submitted,
	})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestTenantRepository_UpdateByStripeAccount_NothingToUpdate(t *testing.T) {
	db, _ := newMockDB(t)
	repo := repository{db: db}

	rows, err := repo.UpdateByStripeAccount(context.Background(), "acct_9", &dto.TenantUpdate{})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestTenantRepository_GetBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "tenants" WHERE slug = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tenant, err := repo.GetBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, tenant)
}

func TestTenantRepository_GetBySlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository{db: db}

	id := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "name", "slug", "stripe_account_id", "stripe_details_submitted",
	}).AddRow(id, "Course Shop", "course-shop", "acct_9", true)

	mock.ExpectQuery(`SELECT \* FROM "tenants" WHERE slug = \$1`).
		WithArgs("course-shop", 1).
		WillReturnRows(rows)

	tenant, err := repo.GetBySlug(context.Background(), "course-shop")
	require.NoError(t, err)
	require.NotNil(t, tenant)
	assert.Equal(t, id, tenant.ID)
	assert.True(t, tenant.StripeDetailsSubmitted)
}
