package notes

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/ribgsilva/simple-notes/app/cmd"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListCommand prints every note, most recently updated first
func ListCommand(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the stored notes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			closeDB, err := cmd.Connect(log)
			if err != nil {
				return err
			}
			defer closeDB()

			notes, err := note.List(c.Context())
			if err != nil {
				return err
			}
			return Print(c, notes)
		},
	}
}

// Print writes notes as a table to the command output
func Print(c *cobra.Command, notes []note.Note) error {
	out := c.OutOrStdout()
	if len(notes) == 0 {
		_, err := fmt.Fprintln(out, color.YellowString("no notes"))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(w, "%d\t%s\t%s\n", n.Id, n.Title, n.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
