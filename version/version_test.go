package version

import "testing"

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease() {
		t.Error("dev should not be a release")
	}
	if info.GoVersion == "" {
		t.Error("expected the Go version from build info")
	}
}

func TestGetLdflagsWin(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	GitCommit = "abc1234"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if info.GitCommit != "abc1234" || info.BuildTime != "2024-01-15T10:30:00Z" {
		t.Errorf("expected ldflags values, got %+v", info)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no commit", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", Dirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfoIsRelease(t *testing.T) {
	tests := []struct {
		info Info
		want bool
	}{
		{Info{Version: "1.0.0"}, true},
		{Info{Version: "dev"}, false},
		{Info{Version: "1.0.0", Dirty: true}, false},
		{Info{Version: "1.0.0-dirty"}, false},
	}
	for _, tt := range tests {
		if got := tt.info.IsRelease(); got != tt.want {
			t.Errorf("%+v: IsRelease() = %v, want %v", tt.info, got, tt.want)
		}
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Errorf("unexpected %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("unexpected %q", got)
	}
}
