package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		settings    []debug.BuildSetting
		ok          bool
		wantVersion string
		wantCommit  string
	}{
		{
			name: "clean checkout",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
				{Key: "vcs.modified", Value: "false"},
			},
			ok:          true,
			wantVersion: "dev-20240501",
			wantCommit:  "0123456",
		},
		{
			name: "modified tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			ok:         true,
			wantCommit: "abc-dirty",
		},
		{
			name: "no build info",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savedVersion, savedCommit := Version, Commit
			t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })
			Version, Commit = "", ""

			fromBuildInfo(func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{Settings: tt.settings}, tt.ok
			})

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestFromBuildInfo_KeepsLdflags(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })
	Version, Commit = "v1.2.3", "feedbee"

	fromBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0000000000"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		}}, true
	})

	if Version != "v1.2.3" || Commit != "feedbee" {
		t.Errorf("fromBuildInfo() overwrote ldflags values: %s", Full())
	}
}

func TestUserAgent(t *testing.T) {
	if ua := UserAgent(); !strings.HasPrefix(ua, "travelist/") {
		t.Errorf("UserAgent() = %q, want travelist/ prefix", ua)
	}
}
