package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GITHUB_REPO", "")
	t.Setenv("PHASES_FILE", "")
	t.Setenv("GH_COMMAND", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Repo)
	assert.Equal(t, "phases.yaml", cfg.PhasesFile)
	assert.Equal(t, "gh", cfg.GhCommand)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("GITHUB_REPO", "myorg/myrepo")
	t.Setenv("PHASES_FILE", "custom-phases.yaml")
	t.Setenv("GH_COMMAND", "/usr/local/bin/gh")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "myorg/myrepo", cfg.Repo)
	assert.Equal(t, "custom-phases.yaml", cfg.PhasesFile)
	assert.Equal(t, "/usr/local/bin/gh", cfg.GhCommand)
}

func TestValidateRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{"正常な形式", "pcharbon70/onto_view", false},
		{"未設定", "", true},
		{"スラッシュなし", "myrepo", true},
		{"owner欠落", "/myrepo", true},
		{"repo欠落", "myorg/", true},
		{"スラッシュ過多", "a/b/c", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Repo: tt.repo}
			err := cfg.ValidateRepo()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
