package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/spf13/cobra"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
	bold     = color.New(color.Bold).SprintFunc()
)

func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okMark, fmt.Sprintf(format, args...))
}

func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", warnMark, fmt.Sprintf(format, args...))
}

func newTable(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
}

// printRows renders rows as a table using the report columns of kind.
func printRows(cmd *cobra.Command, kind report.Kind, rows []report.Row) error {
	schema, err := report.SchemaFor(kind)
	if err != nil {
		return err
	}
	w := newTable(cmd)
	for i, col := range schema.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col.Header)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, col := range schema.Columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, display(row.Field(col.Field)))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// printRecord renders one record as "Header: value" lines.
func printRecord(cmd *cobra.Command, kind report.Kind, row report.Row) error {
	schema, err := report.SchemaFor(kind)
	if err != nil {
		return err
	}
	w := newTable(cmd)
	for _, col := range schema.Columns {
		fmt.Fprintf(w, "%s:\t%s\n", bold(col.Header), display(row.Field(col.Field)))
	}
	return w.Flush()
}

func display(v any) string {
	if v == nil {
		return "-"
	}
	s := fmt.Sprint(v)
	if s == "" {
		return "-"
	}
	return s
}
