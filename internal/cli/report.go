package cli

import (
	"errors"
	"fmt"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/spf13/cobra"
)

func (r *runner) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spreadsheet reports",
	}
	cmd.AddCommand(r.reportExportCmd())
	return cmd
}

func (r *runner) reportExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a collection to an xlsx report (admins only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName, _ := cmd.Flags().GetString("kind")
			out, _ := cmd.Flags().GetString("out")

			kind, err := report.ParseKind(kindName)
			if err != nil {
				return fmt.Errorf("Loại báo cáo không hợp lệ: %w", err)
			}
			path, err := r.app.ExportReport(cmd.Context(), *r.current, kind, out)
			if errors.Is(err, app.ErrForbidden) {
				return fmt.Errorf("Chỉ quản trị viên mới có quyền xuất báo cáo: %w", err)
			}
			if err != nil {
				return fmt.Errorf("Không thể tạo báo cáo: %w", err)
			}
			success(cmd, "Báo cáo đã được lưu tại: %s", path)
			return nil
		},
	}
	cmd.Flags().StringP("kind", "k", string(report.KindCrops), "report kind: crops, animals or activities")
	cmd.Flags().StringP("out", "o", "", "file name inside the reports directory, .xlsx added when missing (default report_<kind>_<timestamp>.xlsx)")
	return cmd
}
