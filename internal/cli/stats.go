package cli

import (
	"fmt"
	"time"

	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/repository"
	"github.com/spf13/cobra"
)

func (r *runner) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := r.app.Stats()
			saved := r.app.LastSaved(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Xin chào, %s\n", bold(r.current.Username))
			w := newTable(cmd)
			for _, line := range []struct {
				label    string
				count    int
				document string
			}{
				{"Số loại cây trồng:", s.Crops, repository.DocumentCrops},
				{"Số loại vật nuôi:", s.Animals, repository.DocumentAnimals},
				{"Số hoạt động gần đây:", s.Activities, repository.DocumentActivities},
			} {
				fmt.Fprintf(w, "%s\t%d\t%s\n", line.label, line.count, lastSaved(saved, line.document))
			}
			return w.Flush()
		},
	}
}

func (r *runner) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent changes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			collection, _ := cmd.Flags().GetString("collection")
			actor, _ := cmd.Flags().GetString("actor")

			entries := r.app.History.Recent(cmd.Context(), history.ListOptions{
				Collection: collection,
				Actor:      actor,
				Limit:      limit,
			})
			if len(entries) == 0 {
				warn(cmd, "No history yet")
				return nil
			}

			w := newTable(cmd)
			fmt.Fprintln(w, "TIME\tACTOR\tACTION\tCOLLECTION\tSUMMARY")
			fmt.Fprintln(w, "----\t-----\t------\t----------\t-------")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.At.Local().Format("2006-01-02 15:04:05"), e.Actor, e.Action, e.Collection, e.Summary)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "maximum entries to show (0 for all)")
	cmd.Flags().String("collection", "", "only entries for this collection")
	cmd.Flags().String("actor", "", "only entries by this user")
	return cmd
}

func lastSaved(saved map[string]time.Time, document string) string {
	at, ok := saved[document]
	if !ok {
		return "chưa lưu"
	}
	return "lưu lúc " + at.Local().Format("2006-01-02 15:04:05")
}
