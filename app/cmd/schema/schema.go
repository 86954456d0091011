package schema

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/ribgsilva/simple-notes/app/cmd"
	"github.com/ribgsilva/simple-notes/persistence/v1/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command groups the schema subcommands
func Command(log *zap.SugaredLogger) *cobra.Command {
	c := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes schema",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Creates the schema",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				return withDB(c, log, "creating schema", "created schema", schema.Create)
			},
		},
		&cobra.Command{
			Use:     "drop",
			Aliases: []string{"delete"},
			Short:   "Deletes the schema",
			Args:    cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				return withDB(c, log, "deleting schema", "deleted schema", schema.Drop)
			},
		},
	)
	return c
}

func withDB(c *cobra.Command, log *zap.SugaredLogger, start, done string, op func(ctx context.Context) error) error {
	closeDB, err := cmd.Connect(log)
	if err != nil {
		return err
	}
	defer closeDB()

	fmt.Fprintln(c.OutOrStdout(), start)
	if err := op(c.Context()); err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), color.GreenString(done))
	return nil
}
