package api

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"phaseimport/config"
	"phaseimport/models"
)

// IssueCreator はイシュー作成機能の抽象です
// 実装を差し替えることで gh コマンド以外の連携（API直接呼び出しなど）にも対応できます
type IssueCreator interface {
	// CheckAuth は連携先への認証状態を確認します
	CheckAuth() error
	// CreateIssue はイシューを1件同期的に作成します
	CreateIssue(req models.IssueRequest) error
	// CommandLine は監査表示用に、リクエストに対応するコマンドライン文字列を返します
	CommandLine(req models.IssueRequest) string
}

// GhClient は gh コマンドを介してGitHubイシューを作成します
type GhClient struct {
	config *config.Config
}

// NewGhClient は新しいghクライアントを作成します
func NewGhClient(cfg *config.Config) *GhClient {
	return &GhClient{config: cfg}
}

// CheckAuth は gh コマンドの存在と認証状態を確認します
func (g *GhClient) CheckAuth() error {
	if _, err := exec.LookPath(g.config.GhCommand); err != nil {
		return fmt.Errorf("%s コマンドが見つかりません: %w", g.config.GhCommand, err)
	}

	cmd := exec.Command(g.config.GhCommand, "auth", "status")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("gh 認証確認エラー: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	return nil
}

// CreateIssue は gh issue create を実行してイシューを1件作成します
// gh の出力はそのまま標準出力・標準エラーに流します
func (g *GhClient) CreateIssue(req models.IssueRequest) error {
	cmd := exec.Command(g.config.GhCommand, buildCreateArgs(req)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("イシュー作成コマンドが失敗しました: %w", err)
	}

	return nil
}

// CommandLine は実行するコマンドラインをクォート済み文字列で返します
func (g *GhClient) CommandLine(req models.IssueRequest) string {
	argv := append([]string{g.config.GhCommand}, buildCreateArgs(req)...)

	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = shellQuote(arg)
	}

	return strings.Join(quoted, " ")
}

// buildCreateArgs は gh issue create の引数リストを組み立てます
// ラベルは解析順のまま --label オプションとして並べます
func buildCreateArgs(req models.IssueRequest) []string {
	args := []string{
		"issue", "create",
		"--repo", req.Repo,
		"--title", req.Title,
		"--body", req.Body,
		"--milestone", req.Milestone,
	}

	for _, label := range req.Labels {
		args = append(args, "--label", label)
	}

	return args
}

// safeArgPattern にマッチする引数はクォートなしで表示できます
var safeArgPattern = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

// shellQuote は引数をPOSIXシェル向けにシングルクォートします
func shellQuote(arg string) string {
	if safeArgPattern.MatchString(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
