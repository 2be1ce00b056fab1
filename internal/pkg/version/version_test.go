package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

// readBuildInfo를 교체하므로 병렬로 실행하지 않습니다.
func TestResolve(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	tests := []struct {
		name  string
		in    Info
		build *debug.BuildInfo
		want  Info
	}{
		{
			name:  "빌드 정보 없음",
			build: nil,
			want:  Info{Version: unknown, Commit: unknown, BuildDate: unknown},
		},
		{
			name: "VCS 메타데이터로 보강",
			build: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abcdef1234567"},
					{Key: "vcs.time", Value: "2025-03-10T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{Version: "v0.3.1", Commit: "abcdef1234567", BuildDate: "2025-03-10T00:00:00Z", DirtyBuild: true},
		},
		{
			name: "주입된 값 우선",
			in:   Info{Version: "v1.0.0", Commit: "1111111"},
			build: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "2222222"}},
			},
			want: Info{Version: "v1.0.0", Commit: "1111111", BuildDate: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) { return tt.build, tt.build != nil }

			got := resolve(tt.in)
			tt.want.GoVersion = runtime.Version()
			tt.want.Platform = runtime.GOOS + "/" + runtime.GOARCH
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", Info{Version: unknown, Commit: unknown, BuildDate: unknown}.String())

	i := Info{
		Version:    "v1.2.0",
		Commit:     "f25b8bf0000",
		BuildDate:  "2025-03-10",
		GoVersion:  "go1.24.0",
		Platform:   "linux/amd64",
		DirtyBuild: true,
	}
	assert.Equal(t, "v1.2.0+dirty (commit: f25b8bf, date: 2025-03-10, go1.24.0 linux/amd64)", i.String())
	assert.Equal(t, "v1.2.0", i.Fields()["version"])
}

func TestGet(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Get().Version)
	assert.NotEmpty(t, Get().GoVersion)
}
