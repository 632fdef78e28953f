package cli

import (
	"github.com/rpggio/farmrec/internal/domain/activity"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/spf13/cobra"
)

func (r *runner) activityCmd() *cobra.Command {
	return entityCmd(r, entity[activity.Activity, activity.Input]{
		use:   "activity",
		short: "Manage farm activities",
		noun:  "activity",
		kind:  report.KindActivities,
		svc:   r.app.Activities,
		idOf:  activity.Key,
		toInput: func(a activity.Activity) activity.Input {
			return activity.Input{
				Name:        a.Name,
				Type:        a.Type,
				Date:        a.Date,
				Responsible: a.Responsible,
				Status:      a.Status,
				Description: a.Description,
			}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "activity name (required)")
			cmd.Flags().String("type", "", "activity type (required)")
			cmd.Flags().String("date", "", "date of the work, e.g. 2024-01-31")
			cmd.Flags().String("responsible", "", "person in charge")
			cmd.Flags().String("status", "", "progress status")
			cmd.Flags().String("description", "", "free-text description")
		},
		apply: func(cmd *cobra.Command, in *activity.Input) error {
			setString(cmd, "name", &in.Name)
			setString(cmd, "type", &in.Type)
			setString(cmd, "date", &in.Date)
			setString(cmd, "responsible", &in.Responsible)
			setString(cmd, "status", &in.Status)
			setString(cmd, "description", &in.Description)
			return nil
		},
		added:   "Đã thêm hoạt động mới",
		updated: "Đã cập nhật thông tin hoạt động",
		deleted: "Đã xóa hoạt động",
	})
}
