package cli

import (
	"errors"
	"fmt"

	"github.com/rpggio/farmrec/internal/domain/user"
	"github.com/spf13/cobra"
)

var errConfirmMismatch = errors.New("Mật khẩu xác nhận không khớp")

func (r *runner) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login accounts",
	}
	cmd.AddCommand(r.userRegisterCmd(), r.userPasswdCmd(), r.userWhoamiCmd())
	return cmd
}

func (r *runner) userRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "register [username]",
		Short:       "Register a new account (no login needed)",
		Args:        cobra.ExactArgs(1),
		Annotations: noLogin,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, password := r.credentials()
			confirm, _ := cmd.Flags().GetString("confirm")
			userType, _ := cmd.Flags().GetString("type")

			if args[0] == "" || password == "" {
				return gateError(user.ErrInvalidInput)
			}
			if password != confirm {
				return errConfirmMismatch
			}

			u, err := r.app.Users.Register(cmd.Context(), args[0], password, user.Type(userType))
			if err != nil {
				return gateError(err)
			}
			success(cmd, "%s: %s (%s)", user.MsgRegistered, u.Username, u.Type)
			return nil
		},
	}
	cmd.Flags().String("confirm", "", "repeat the password given with --password")
	cmd.Flags().String("type", string(user.TypeUser), "account type: user or admin")
	return cmd
}

func (r *runner) userPasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the password of the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			next, _ := cmd.Flags().GetString("new")
			confirm, _ := cmd.Flags().GetString("confirm")
			if next == "" {
				return errors.New("Vui lòng điền đầy đủ thông tin")
			}
			if next != confirm {
				return errors.New("Mật khẩu mới và xác nhận không khớp")
			}

			_, current := r.credentials()
			if err := r.app.Users.ChangePassword(cmd.Context(), r.actor(), current, next); err != nil {
				return gateError(err)
			}
			success(cmd, user.MsgPasswordChanged)
			return nil
		},
	}
	cmd.Flags().String("new", "", "new password")
	cmd.Flags().String("confirm", "", "repeat the new password")
	return cmd
}

func (r *runner) userWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", r.current.Username, r.current.Type)
			if user.CanExport(*r.current) {
				fmt.Fprintln(cmd.OutOrStdout(), "  can export reports")
			}
			return nil
		},
	}
}
