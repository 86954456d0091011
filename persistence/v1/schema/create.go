package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/simple-notes/sys"
)

// Create creates the notes table when it does not exist yet
func Create(ctx context.Context) error {
	db := sys.R.Database

	stmt, err := createStatement(sys.Configs.Database.Driver)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
