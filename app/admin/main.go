package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ribgsilva/simple-notes/app/cmd/notes"
	"github.com/ribgsilva/simple-notes/app/cmd/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	// admin output goes to the terminal, not the log pipeline
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:           "notes-admin",
		Short:         "Administrative commands for the notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log), notes.ListCommand(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
		os.Exit(1)
	}
}
