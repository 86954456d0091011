package note

import (
	"database/sql"

	"github.com/ribgsilva/simple-notes/sys"
)

func sysDB() *sql.DB {
	return sys.R.Database
}
