package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate is returned when an insert or update trips one of the
// unique indexes declared in schema.sql. The services run their own
// uniqueness checks first to produce friendlier messages; this sentinel
// covers the window between check and write, where the index is the
// authoritative guard.
var ErrDuplicate = errors.New("duplicate key")

// ErrNoEffect is returned when an UPDATE on a row known to exist
// affected nothing.
var ErrNoEffect = errors.New("no rows affected")

const mysqlDupEntry = 1062

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDupEntry
}
