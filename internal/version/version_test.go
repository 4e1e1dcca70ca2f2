package version

import (
	"runtime/debug"
	"testing"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{name: "no build info", ok: false, want: "dev"},
		{
			name: "tagged module",
			info: &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			ok:   true,
			want: "v1.2.3",
		},
		{
			name: "dirty revision",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			ok:   true,
			want: "0123456 (dirty)",
		},
		{
			name: "devel without vcs",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			ok:   true,
			want: "dev",
		},
	}

	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) { return tc.info, tc.ok }
			if got := GetVersion(); got != tc.want {
				t.Fatalf("unexpected version: got %q want %q", got, tc.want)
			}
		})
	}
}
