package postgres_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"

	"github.com/jmoiron/sqlx"
)

// scriptedStep is one database round trip the scripted connection serves,
// either a result set or a driver error.
type scriptedStep struct {
	cols []string
	rows [][]driver.Value
	err  error
}

// newScriptedDB returns a sqlx.DB whose connections answer queries from the
// given steps in order. It stands in for PostgreSQL where the repository
// behavior under test is driven by what the database returns, such as the
// empty result of a conflicting insert or a constraint violation.
func newScriptedDB(steps ...scriptedStep) *sqlx.DB {
	conn := &scriptedConn{steps: &steps}
	return sqlx.NewDb(sql.OpenDB(&scriptedConnector{conn: conn}), "pgx")
}

type scriptedConnector struct {
	conn *scriptedConn
}

func (c *scriptedConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c *scriptedConnector) Driver() driver.Driver                        { return scriptedDriver{} }

type scriptedDriver struct{}

func (scriptedDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open via connector")
}

type scriptedConn struct {
	steps *[]scriptedStep
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements not scripted")
}
func (c *scriptedConn) Close() error              { return nil }
func (c *scriptedConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not scripted") }

func (c *scriptedConn) next() (scriptedStep, error) {
	if len(*c.steps) == 0 {
		return scriptedStep{}, errors.New("unexpected query")
	}
	step := (*c.steps)[0]
	*c.steps = (*c.steps)[1:]
	if step.err != nil {
		return scriptedStep{}, step.err
	}
	return step, nil
}

func (c *scriptedConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	step, err := c.next()
	if err != nil {
		return nil, err
	}
	return &scriptedRows{cols: step.cols, rows: step.rows}, nil
}

func (c *scriptedConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	if _, err := c.next(); err != nil {
		return nil, err
	}
	return driver.RowsAffected(1), nil
}

type scriptedRows struct {
	cols []string
	rows [][]driver.Value
	pos  int
}

func (r *scriptedRows) Columns() []string { return r.cols }
func (r *scriptedRows) Close() error      { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}
