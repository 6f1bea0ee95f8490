package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnector(t *testing.T) (*Connector, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewConnector(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestTransactionCommitsOnSuccess(t *testing.T) {
	c, mock := newMockConnector(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.Transaction(context.Background(), func(q Querier) error {
		_, err := q.ExecContext(context.Background(), "UPDATE users SET balance_wallet = 1")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollsBackOnError(t *testing.T) {
	c, mock := newMockConnector(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("business failure")
	err := c.Transaction(context.Background(), func(q Querier) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollsBackOnPanic(t *testing.T) {
	c, mock := newMockConnector(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = c.Transaction(context.Background(), func(q Querier) error {
			panic("handler blew up")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSerializeReleasesConnection(t *testing.T) {
	c, mock := newMockConnector(t)

	mock.ExpectQuery("SELECT NOW").WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow("x"))

	err := c.Serialize(context.Background(), func(q Querier) error {
		var now string
		return q.GetContext(context.Background(), &now, "SELECT NOW()")
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSerializePropagatesError(t *testing.T) {
	c, _ := newMockConnector(t)

	sentinel := errors.New("query failed")
	err := c.Serialize(context.Background(), func(q Querier) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
}

func TestMigrateAppliesAllStatements(t *testing.T) {
	c, mock := newMockConnector(t)

	for range migrations {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, c.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
