package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/apptest"
	"github.com/rpggio/farmrec/internal/cli"
	"github.com/rpggio/farmrec/internal/domain/history"
	"github.com/rpggio/farmrec/internal/domain/user"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FARMREC_USERNAME", "")
	t.Setenv("FARMREC_PASSWORD", "")

	var out bytes.Buffer
	root := cli.NewRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func asAdmin(args ...string) []string {
	return append([]string{"-u", "admin", "-p", "admin123"}, args...)
}

func TestCLI_RequiresLogin(t *testing.T) {
	a := apptest.New(t)

	_, err := run(t, a, "crop", "list")
	require.ErrorContains(t, err, "vui lòng nhập tên đăng nhập và mật khẩu")

	_, err = run(t, a, "-u", "admin", "-p", "wrong", "crop", "list")
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)
	require.ErrorContains(t, err, "Tên đăng nhập hoặc mật khẩu không đúng")
}

func TestCLI_LoginFromEnvironment(t *testing.T) {
	a := apptest.New(t)

	var out bytes.Buffer
	root := cli.NewRootCmd(a)
	root.SetOut(&out)
	root.SetArgs([]string{"user", "whoami"})
	t.Setenv("FARMREC_USERNAME", "admin")
	t.Setenv("FARMREC_PASSWORD", "admin123")

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "admin (admin)")
	require.Contains(t, out.String(), "can export reports")
}

func TestCLI_CropLifecycle(t *testing.T) {
	a := apptest.New(t)

	out, err := run(t, a, asAdmin("crop", "add", "--name", "Rice", "--type", "Cereal", "--planting-date", "2024-01-01", "--area", "2.5", "--status", "Growing")...)
	require.NoError(t, err)
	require.Contains(t, out, "Đã thêm cây trồng mới (ID 1)")

	out, err = run(t, a, asAdmin("crop", "update", "1", "--status", "Harvested")...)
	require.NoError(t, err)
	require.Contains(t, out, "Đã cập nhật thông tin cây trồng")

	got, err := a.Crops.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Harvested", got.Status)
	require.Equal(t, "2.5", got.Area)

	out, err = run(t, a, asAdmin("crop", "list")...)
	require.NoError(t, err)
	require.Contains(t, out, "Tên Cây")
	require.Contains(t, out, "Rice")

	out, err = run(t, a, asAdmin("crop", "show", "1")...)
	require.NoError(t, err)
	require.Contains(t, out, "Harvested")

	_, err = run(t, a, asAdmin("crop", "delete", "1")...)
	require.NoError(t, err)
	require.Equal(t, 0, a.Crops.Count())

	out, err = run(t, a, asAdmin("crop", "list")...)
	require.NoError(t, err)
	require.Contains(t, out, "No crops found")

	entries := a.History.Recent(context.Background(), history.ListOptions{Collection: "crops"})
	require.Len(t, entries, 3)
	require.Equal(t, "admin", entries[0].Actor)
}

func TestCLI_CropErrors(t *testing.T) {
	a := apptest.New(t)

	_, err := run(t, a, asAdmin("crop", "add", "--name", "Rice")...)
	require.ErrorContains(t, err, "type is required")

	_, err = run(t, a, asAdmin("crop", "update", "9", "--status", "x")...)
	require.ErrorContains(t, err, "crop not found")

	_, err = run(t, a, asAdmin("crop", "show", "abc")...)
	require.ErrorContains(t, err, "invalid id")
}

func TestCLI_AnimalQuantity(t *testing.T) {
	a := apptest.New(t)

	_, err := run(t, a, asAdmin("animal", "add", "--name", "Gà", "--type", "Gia cầm", "--quantity", "nhiều")...)
	require.ErrorContains(t, err, "quantity must be a whole number")

	_, err = run(t, a, asAdmin("animal", "add", "--name", "Gà", "--type", "Gia cầm", "--quantity", "120")...)
	require.NoError(t, err)

	got, err := a.Animals.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 120, got.Quantity)
}

func TestCLI_ActivitySearch(t *testing.T) {
	a := apptest.New(t)

	_, err := run(t, a, asAdmin("activity", "add", "--name", "Phun thuốc", "--type", "Chăm sóc", "--responsible", "Anh Ba")...)
	require.NoError(t, err)
	_, err = run(t, a, asAdmin("activity", "add", "--name", "Cho ăn", "--type", "Chăn nuôi")...)
	require.NoError(t, err)

	out, err := run(t, a, asAdmin("activity", "list", "--search", "phun thuoc")...)
	require.NoError(t, err)
	require.Contains(t, out, "Phun thuốc")
	require.NotContains(t, out, "Cho ăn")
}

func TestCLI_RegisterAndExportGate(t *testing.T) {
	a := apptest.New(t)

	_, err := run(t, a, "-p", "pw", "user", "register", "farmer", "--confirm", "other")
	require.ErrorContains(t, err, "Mật khẩu xác nhận không khớp")

	out, err := run(t, a, "-p", "pw", "user", "register", "farmer", "--confirm", "pw")
	require.NoError(t, err)
	require.Contains(t, out, "Đăng ký thành công")

	_, err = run(t, a, "-p", "pw", "user", "register", "farmer", "--confirm", "pw")
	require.ErrorIs(t, err, user.ErrDuplicateUsername)

	_, err = run(t, a, "-u", "farmer", "-p", "pw", "report", "export", "--kind", "crops")
	require.ErrorIs(t, err, app.ErrForbidden)
	require.ErrorContains(t, err, "Chỉ quản trị viên mới có quyền xuất báo cáo")

	out, err = run(t, a, asAdmin("report", "export", "--kind", "animals", "--out", "farm.xlsx")...)
	require.NoError(t, err)
	path := filepath.Join(a.Config().Reports.Dir, "farm.xlsx")
	require.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = run(t, a, asAdmin("report", "export", "--kind", "crops", "-o", "monthly")...)
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(a.Config().Reports.Dir, "monthly.xlsx"))

	_, err = run(t, a, asAdmin("report", "export", "--kind", "crops", "-o", "/")...)
	require.ErrorIs(t, err, report.ErrInvalidFilename)

	_, err = run(t, a, asAdmin("report", "export", "--kind", "tools")...)
	require.ErrorContains(t, err, "Loại báo cáo không hợp lệ")
}

func TestCLI_ChangePassword(t *testing.T) {
	a := apptest.New(t)

	_, err := run(t, a, asAdmin("user", "passwd", "--new", "n3w", "--confirm", "typo")...)
	require.ErrorContains(t, err, "Mật khẩu mới và xác nhận không khớp")

	out, err := run(t, a, asAdmin("user", "passwd", "--new", "n3w", "--confirm", "n3w")...)
	require.NoError(t, err)
	require.Contains(t, out, "Đổi mật khẩu thành công")

	_, err = run(t, a, asAdmin("stats")...)
	require.ErrorIs(t, err, user.ErrAuthenticationFailed)

	out, err = run(t, a, "-u", "admin", "-p", "n3w", "stats")
	require.NoError(t, err)
	require.Contains(t, out, "Số loại cây trồng:")
	require.Contains(t, out, "chưa lưu")
}

func TestCLI_History(t *testing.T) {
	a := apptest.New(t)

	out, err := run(t, a, asAdmin("history")...)
	require.NoError(t, err)
	require.Contains(t, out, "No history yet")

	_, err = run(t, a, asAdmin("crop", "add", "--name", "Ngô", "--type", "Ngũ cốc")...)
	require.NoError(t, err)

	out, err = run(t, a, asAdmin("history", "--limit", "5")...)
	require.NoError(t, err)
	require.Contains(t, out, `created crop "Ngô"`)
}
