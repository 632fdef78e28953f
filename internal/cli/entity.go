package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/farmrec/internal/report"
	"github.com/spf13/cobra"
)

// recordService is the part of a crop, animal or activity service the
// command tree drives.
type recordService[T report.Row, In any] interface {
	Create(ctx context.Context, actor string, in In) (*T, error)
	Update(ctx context.Context, actor string, id int, in In) (*T, error)
	Delete(ctx context.Context, actor string, id int) error
	Get(ctx context.Context, id int) (*T, error)
	List(ctx context.Context) []T
	Search(ctx context.Context, keyword string) []T
}

// entity describes one record kind's subcommands.
type entity[T report.Row, In any] struct {
	use     string
	short   string
	noun    string
	kind    report.Kind
	svc     recordService[T, In]
	idOf    func(T) int
	toInput func(T) In
	// flags registers the field flags shared by add and update.
	flags func(*cobra.Command)
	// apply copies the changed field flags onto in.
	apply func(cmd *cobra.Command, in *In) error

	added, updated, deleted string
}

func entityCmd[T report.Row, In any](r *runner, e entity[T, In]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   e.use,
		Short: e.short,
	}
	cmd.AddCommand(entityListCmd(e), entityShowCmd(e), entityAddCmd(r, e), entityUpdateCmd(r, e), entityDeleteCmd(r, e))
	return cmd
}

func entityListCmd[T report.Row, In any](e entity[T, In]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", e.kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword, _ := cmd.Flags().GetString("search")
			items := e.svc.Search(cmd.Context(), keyword)
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s found\n", e.kind)
				return nil
			}
			return printRows(cmd, e.kind, report.Rows(items))
		},
	}
	cmd.Flags().StringP("search", "s", "", "keyword matched against name, type and status, ignoring case and accents")
	return cmd
}

func entityShowCmd[T report.Row, In any](e entity[T, In]) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: fmt.Sprintf("Show one %s", e.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := e.svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printRecord(cmd, e.kind, *item)
		},
	}
}

func entityAddCmd[T report.Row, In any](r *runner, e entity[T, In]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s", e.noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in In
			if err := e.apply(cmd, &in); err != nil {
				return err
			}
			item, err := e.svc.Create(cmd.Context(), r.actor(), in)
			if err != nil {
				return fmt.Errorf("failed to add %s: %w", e.noun, err)
			}
			success(cmd, "%s (ID %d)", e.added, e.idOf(*item))
			return nil
		},
	}
	e.flags(cmd)
	return cmd
}

func entityUpdateCmd[T report.Row, In any](r *runner, e entity[T, In]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: fmt.Sprintf("Update a %s; unset flags keep their current value", e.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			existing, err := e.svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			in := e.toInput(*existing)
			if err := e.apply(cmd, &in); err != nil {
				return err
			}
			if _, err := e.svc.Update(cmd.Context(), r.actor(), id, in); err != nil {
				return fmt.Errorf("failed to update %s %d: %w", e.noun, id, err)
			}
			success(cmd, "%s (ID %d)", e.updated, id)
			return nil
		},
	}
	e.flags(cmd)
	return cmd
}

func entityDeleteCmd[T report.Row, In any](r *runner, e entity[T, In]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: fmt.Sprintf("Delete a %s", e.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := e.svc.Delete(cmd.Context(), r.actor(), id); err != nil {
				return err
			}
			success(cmd, "%s (ID %d)", e.deleted, id)
			return nil
		},
	}
}

// setString copies flag name onto dst when the flag was given.
func setString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}
