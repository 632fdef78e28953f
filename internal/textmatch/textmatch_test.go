package textmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lúa", "lua"},
		{"ĐỒNG LÚA", "dong lua"},
		{"Bò sữa", "bo sua"},
		{"Rice", "rice"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestContains(t *testing.T) {
	require.True(t, Contains("lua", "Cây Lúa", "Ngũ cốc"))
	require.True(t, Contains("NGU COC", "Cây Lúa", "Ngũ cốc"))
	require.True(t, Contains("đang", "Đang phát triển"))
	require.True(t, Contains("  ", "anything"))
	require.True(t, Contains("", ""))
	require.False(t, Contains("ngô", "Lúa", "Khoai"))
	require.False(t, Contains("x"))
}
