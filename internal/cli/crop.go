package cli

import (
	"github.com/rpggio/farmrec/internal/domain/crop"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/spf13/cobra"
)

func (r *runner) cropCmd() *cobra.Command {
	return entityCmd(r, entity[crop.Crop, crop.Input]{
		use:   "crop",
		short: "Manage crops",
		noun:  "crop",
		kind:  report.KindCrops,
		svc:   r.app.Crops,
		idOf:  crop.Key,
		toInput: func(c crop.Crop) crop.Input {
			return crop.Input{
				Name:         c.Name,
				Type:         c.Type,
				PlantingDate: c.PlantingDate,
				Area:         c.Area,
				Status:       c.Status,
				Notes:        c.Notes,
			}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "crop name (required)")
			cmd.Flags().String("type", "", "crop type (required)")
			cmd.Flags().String("planting-date", "", "planting date, e.g. 2024-01-31")
			cmd.Flags().String("area", "", "area in hectares")
			cmd.Flags().String("status", "", "growth status")
			cmd.Flags().String("notes", "", "free-text notes")
		},
		apply: func(cmd *cobra.Command, in *crop.Input) error {
			setString(cmd, "name", &in.Name)
			setString(cmd, "type", &in.Type)
			setString(cmd, "planting-date", &in.PlantingDate)
			setString(cmd, "area", &in.Area)
			setString(cmd, "status", &in.Status)
			setString(cmd, "notes", &in.Notes)
			return nil
		},
		added:   "Đã thêm cây trồng mới",
		updated: "Đã cập nhật thông tin cây trồng",
		deleted: "Đã xóa cây trồng",
	})
}
