// Package cli is the farmrec command tree. Every command except the ones
// marked noLogin authenticates through the user gate before it runs.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/domain/user"
	"github.com/spf13/cobra"
)

const annotationNoLogin = "farmrec/no-login"

var noLogin = map[string]string{annotationNoLogin: "true"}

// runner carries the App and the logged-in user through the command tree.
type runner struct {
	app      *app.App
	username string
	password string
	current  *user.User
}

// NewRootCmd builds the farmrec command tree over a.
func NewRootCmd(a *app.App) *cobra.Command {
	r := &runner{app: a}

	root := &cobra.Command{
		Use:   "farmrec",
		Short: "Farm records: crops, animals and farm activities",
		Long: `farmrec keeps crop, animal and activity records in JSON documents,
checks a username and password before every change, and exports
spreadsheet reports for administrators.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.authenticate,
	}
	root.PersistentFlags().StringVarP(&r.username, "username", "u", "", "login name (env FARMREC_USERNAME)")
	root.PersistentFlags().StringVarP(&r.password, "password", "p", "", "login password (env FARMREC_PASSWORD)")

	root.AddCommand(r.cropCmd())
	root.AddCommand(r.animalCmd())
	root.AddCommand(r.activityCmd())
	root.AddCommand(r.userCmd())
	root.AddCommand(r.reportCmd())
	root.AddCommand(r.statsCmd())
	root.AddCommand(r.historyCmd())
	root.AddCommand(r.serveCmd())

	return root
}

func (r *runner) credentials() (string, string) {
	username, password := r.username, r.password
	if username == "" {
		username = os.Getenv("FARMREC_USERNAME")
	}
	if password == "" {
		password = os.Getenv("FARMREC_PASSWORD")
	}
	return username, password
}

func (r *runner) authenticate(cmd *cobra.Command, _ []string) error {
	if skipsLogin(cmd) {
		return nil
	}
	username, password := r.credentials()
	if username == "" || password == "" {
		return errors.New("vui lòng nhập tên đăng nhập và mật khẩu (--username/--password or FARMREC_USERNAME/FARMREC_PASSWORD)")
	}
	u, err := r.app.Login(cmd.Context(), username, password)
	if err != nil {
		return gateError(err)
	}
	r.current = u
	return nil
}

func skipsLogin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoLogin] == "true" {
			return true
		}
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}
	return false
}

// actor is the username recorded in the change journal.
func (r *runner) actor() string {
	if r.current == nil {
		return ""
	}
	return r.current.Username
}

// gateError prefixes a user gate error with the message shown to people.
func gateError(err error) error {
	return fmt.Errorf("%s: %w", user.Message(err), err)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
