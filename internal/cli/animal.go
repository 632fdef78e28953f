package cli

import (
	"github.com/rpggio/farmrec/internal/domain/animal"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/spf13/cobra"
)

func (r *runner) animalCmd() *cobra.Command {
	return entityCmd(r, entity[animal.Animal, animal.Input]{
		use:   "animal",
		short: "Manage animals",
		noun:  "animal",
		kind:  report.KindAnimals,
		svc:   r.app.Animals,
		idOf:  animal.Key,
		toInput: func(a animal.Animal) animal.Input {
			return animal.Input{
				Name:      a.Name,
				Type:      a.Type,
				EntryDate: a.EntryDate,
				Quantity:  a.Quantity,
				Status:    a.Status,
				Notes:     a.Notes,
			}
		},
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "animal name (required)")
			cmd.Flags().String("type", "", "animal type (required)")
			cmd.Flags().String("entry-date", "", "date the animals arrived, e.g. 2024-01-31")
			cmd.Flags().String("quantity", "", "head count, a whole number")
			cmd.Flags().String("status", "", "health status")
			cmd.Flags().String("notes", "", "free-text notes")
		},
		apply: func(cmd *cobra.Command, in *animal.Input) error {
			setString(cmd, "name", &in.Name)
			setString(cmd, "type", &in.Type)
			setString(cmd, "entry-date", &in.EntryDate)
			setString(cmd, "status", &in.Status)
			setString(cmd, "notes", &in.Notes)
			if cmd.Flags().Changed("quantity") {
				raw, _ := cmd.Flags().GetString("quantity")
				n, err := animal.ParseQuantity(raw)
				if err != nil {
					return err
				}
				in.Quantity = n
			}
			return nil
		},
		added:   "Đã thêm vật nuôi mới",
		updated: "Đã cập nhật thông tin vật nuôi",
		deleted: "Đã xóa vật nuôi",
	})
}
