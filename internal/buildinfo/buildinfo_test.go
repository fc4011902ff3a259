package buildinfo

import "testing"

func TestShort(t *testing.T) {
	origVersion, origCommit := Version, CommitHash
	t.Cleanup(func() { Version, CommitHash = origVersion, origCommit })

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev (unknown)"},
		{"v0.3.0", "1a2b3c4d5e6f", "v0.3.0 (1a2b3c4)"},
		{"v0.3.0", "abc", "v0.3.0 (abc)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			Version, CommitHash = tt.version, tt.commit
			if got := Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}
