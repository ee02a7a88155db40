// Package dbtest tiene fakes de db.DB para testear repositorios sin Postgres.
// Cada llamada queda registrada para poder verificar SQL y argumentos.
package dbtest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call es una llamada registrada por FakeDB.
type Call struct {
	Method string
	SQL    string
	Args   []any
}

// FakeDB implementa db.DB con funciones configurables por test.
type FakeDB struct {
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginFn    func(ctx context.Context) (pgx.Tx, error)

	LastQuery string
	LastArgs  []any
	Calls     []Call

	QueryRowCalled bool
	QueryCalled    bool
	ExecCalled     bool
	BeginCalled    bool
}

func (db *FakeDB) record(method, sql string, args []any) {
	db.LastQuery = sql
	db.LastArgs = args
	db.Calls = append(db.Calls, Call{Method: method, SQL: sql, Args: args})
}

func (db *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.QueryRowCalled = true
	db.record("QueryRow", sql, args)
	if db.QueryRowFn == nil {
		return &FakeRow{Err: errors.New("unexpected QueryRow call")}
	}
	return db.QueryRowFn(ctx, sql, args...)
}

func (db *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.QueryCalled = true
	db.record("Query", sql, args)
	if db.QueryFn == nil {
		return nil, errors.New("unexpected Query call")
	}
	return db.QueryFn(ctx, sql, args...)
}

func (db *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.ExecCalled = true
	db.record("Exec", sql, args)
	if db.ExecFn == nil {
		return pgconn.CommandTag{}, errors.New("unexpected Exec call")
	}
	return db.ExecFn(ctx, sql, args...)
}

// Begin devuelve BeginFn si está configurado; si no, una FakeTx que delega en db.
func (db *FakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.BeginCalled = true
	if db.BeginFn != nil {
		return db.BeginFn(ctx)
	}
	return &FakeTx{DB: db}, nil
}

// FakeTx es una transacción que ejecuta todo contra el FakeDB que la creó.
// Embebe pgx.Tx (nil) para cumplir la interfaz; métodos no sobreescritos hacen panic.
type FakeTx struct {
	pgx.Tx

	DB        *FakeDB
	CommitErr error

	Committed  bool
	RolledBack bool
}

func (tx *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return tx.DB.QueryRow(ctx, sql, args...)
}

func (tx *FakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return tx.DB.Query(ctx, sql, args...)
}

func (tx *FakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return tx.DB.Exec(ctx, sql, args...)
}

func (tx *FakeTx) Commit(ctx context.Context) error {
	if tx.CommitErr != nil {
		return tx.CommitErr
	}
	tx.Committed = true
	return nil
}

// Rollback después de Commit es un no-op, igual que en pgx.
func (tx *FakeTx) Rollback(ctx context.Context) error {
	if tx.Committed {
		return pgx.ErrTxClosed
	}
	tx.RolledBack = true
	return nil
}

// FakeRow devuelve Values en Scan o Err si está seteado.
type FakeRow struct {
	Values []any
	Err    error
}

func (row *FakeRow) Scan(dest ...any) error {
	if row.Err != nil {
		return row.Err
	}
	return AssignValues(dest, row.Values)
}

// FakeRows itera Rows en orden.
type FakeRows struct {
	Rows    [][]any
	IterErr error
	ScanErr error

	idx    int
	closed bool
}

func (rows *FakeRows) Close() {
	rows.closed = true
}

// Closed indica si el repositorio cerró las filas.
func (rows *FakeRows) Closed() bool {
	return rows.closed
}

func (rows *FakeRows) Err() error {
	return rows.IterErr
}

func (rows *FakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.CommandTag{}
}

func (rows *FakeRows) FieldDescriptions() []pgconn.FieldDescription {
	return nil
}

func (rows *FakeRows) Next() bool {
	if rows.closed {
		return false
	}
	if rows.idx >= len(rows.Rows) {
		rows.closed = true
		return false
	}
	rows.idx++
	return true
}

func (rows *FakeRows) Scan(dest ...any) error {
	if rows.ScanErr != nil {
		return rows.ScanErr
	}
	if rows.idx == 0 || rows.idx > len(rows.Rows) {
		return errors.New("scan called without next")
	}
	return AssignValues(dest, rows.Rows[rows.idx-1])
}

func (rows *FakeRows) Values() ([]any, error) {
	return nil, errors.New("not implemented")
}

func (rows *FakeRows) RawValues() [][]byte {
	return nil
}

func (rows *FakeRows) Conn() *pgx.Conn {
	return nil
}

// AssignValues copia values en los punteros dest, convirtiendo tipos compatibles.
func AssignValues(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("dest len %d does not match values len %d", len(dest), len(values))
	}
	for i, d := range dest {
		if d == nil {
			continue
		}
		if err := assignValue(d, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func assignValue(dest any, value any) error {
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return fmt.Errorf("dest is not pointer")
	}
	if value == nil {
		destValue.Elem().Set(reflect.Zero(destValue.Elem().Type()))
		return nil
	}
	valueValue := reflect.ValueOf(value)
	destElem := destValue.Elem()
	if destElem.Kind() == reflect.Ptr {
		ptrValue := reflect.New(destElem.Type().Elem())
		ptrValue.Elem().Set(valueValue.Convert(destElem.Type().Elem()))
		destElem.Set(ptrValue)
		return nil
	}
	destElem.Set(valueValue.Convert(destElem.Type()))
	return nil
}

// NormalizeSQL colapsa espacios para comparar queries multilínea.
func NormalizeSQL(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
