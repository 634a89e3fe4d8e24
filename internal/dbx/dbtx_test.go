package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t, "dbx_commit")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t, "dbx_rollback")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('fail')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRows(t, db), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t, "dbx_panic")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('panic')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t, "dbx_begin")
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}

func mockOpener(t *testing.T) (Opener, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return func(driverName, dsn string) (*sql.DB, error) { return db, nil }, mock
}

func TestWithConn_RunsFnAndCloses(t *testing.T) {
	open, mock := mockOpener(t)
	mock.ExpectExec("UPDATE t").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectClose()

	called := false
	err := WithConn(context.Background(), open, "pgx", "dsn", func(ctx context.Context, conn DBTX) error {
		called = true
		_, err := conn.ExecContext(ctx, "UPDATE t SET v = 'x'")
		return err
	})

	require.NoError(t, err)
	require.True(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithConn_ClosesOnFnError(t *testing.T) {
	open, mock := mockOpener(t)
	mock.ExpectClose()

	want := errors.New("fn failed")
	err := WithConn(context.Background(), open, "pgx", "dsn", func(ctx context.Context, conn DBTX) error {
		return want
	})

	require.ErrorIs(t, err, want)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithConn_OpenError(t *testing.T) {
	want := errors.New("bad dsn")
	open := func(driverName, dsn string) (*sql.DB, error) { return nil, want }

	err := WithConn(context.Background(), open, "pgx", "dsn", func(ctx context.Context, conn DBTX) error {
		t.Fatal("fn must not run")
		return nil
	})

	require.ErrorIs(t, err, want)
}

func TestWithConn_PassesDriverAndDSN(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	var gotDriver, gotDSN string
	open := func(driverName, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driverName, dsn
		return db, nil
	}

	err = WithConn(context.Background(), open, "pgx", "postgres://x", func(ctx context.Context, conn DBTX) error {
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, "pgx", gotDriver)
	require.Equal(t, "postgres://x", gotDSN)
}
