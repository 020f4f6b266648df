package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phaseimport/config"
	"phaseimport/models"
)

func TestShellQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"安全な引数はそのまま", "bug", "bug"},
		{"リポジトリ形式", "pcharbon70/onto_view", "pcharbon70/onto_view"},
		{"空白を含む", "Fix login bug", "'Fix login bug'"},
		{"空文字列", "", "''"},
		{"シングルクォートを含む", "it's broken", `'it'\''s broken'`},
		{"ダブルクォートを含む", `say "hi"`, `'say "hi"'`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, shellQuote(tt.arg))
		})
	}
}

func TestBuildCreateArgs(t *testing.T) {
	t.Parallel()

	args := buildCreateArgs(models.IssueRequest{
		Repo:      "myorg/myrepo",
		Title:     "Fix login bug",
		Body:      "Users cannot log in",
		Milestone: "Phase 1",
		Labels:    []string{"bug", "urgent"},
	})

	assert.Equal(t, []string{
		"issue", "create",
		"--repo", "myorg/myrepo",
		"--title", "Fix login bug",
		"--body", "Users cannot log in",
		"--milestone", "Phase 1",
		"--label", "bug",
		"--label", "urgent",
	}, args)
}

func TestBuildCreateArgs_NoLabels(t *testing.T) {
	t.Parallel()

	// ラベルなしでも --body は空文字列として必ず渡す
	args := buildCreateArgs(models.IssueRequest{
		Repo:      "myorg/myrepo",
		Title:     "No labels",
		Milestone: "Phase 2",
	})

	assert.Equal(t, []string{
		"issue", "create",
		"--repo", "myorg/myrepo",
		"--title", "No labels",
		"--body", "",
		"--milestone", "Phase 2",
	}, args)
}

func TestCommandLine(t *testing.T) {
	t.Parallel()

	client := NewGhClient(&config.Config{Repo: "pcharbon70/onto_view", GhCommand: "gh"})

	line := client.CommandLine(models.IssueRequest{
		Repo:      "pcharbon70/onto_view",
		Title:     "Fix login bug",
		Body:      "Users cannot log in",
		Milestone: "Phase 1 – Ontology Ingestion & Canonical Model",
		Labels:    []string{"bug", "urgent"},
	})

	assert.Equal(t,
		"gh issue create --repo pcharbon70/onto_view"+
			" --title 'Fix login bug'"+
			" --body 'Users cannot log in'"+
			" --milestone 'Phase 1 – Ontology Ingestion & Canonical Model'"+
			" --label bug --label urgent",
		line)
}

func TestCheckAuth_CommandNotFound(t *testing.T) {
	t.Parallel()

	client := NewGhClient(&config.Config{GhCommand: "definitely-not-installed-gh"})

	err := client.CheckAuth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "コマンドが見つかりません")
}

func TestCreateIssue_CommandFailure(t *testing.T) {
	t.Parallel()

	// false はどの引数でも終了コード1で終わる
	client := NewGhClient(&config.Config{GhCommand: "false"})

	err := client.CreateIssue(models.IssueRequest{Repo: "a/b", Title: "t", Milestone: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "イシュー作成コマンドが失敗しました")
}

func TestCreateIssue_Success(t *testing.T) {
	t.Parallel()

	client := NewGhClient(&config.Config{GhCommand: "true"})

	err := client.CreateIssue(models.IssueRequest{Repo: "a/b", Title: "t", Milestone: "m"})
	require.NoError(t, err)
}
