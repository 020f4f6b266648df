package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// GitHub設定
	Repo string // 対象リポジトリ ("owner/repo" 形式)

	// ファイルパス
	PhasesFile string

	// 外部コマンド設定
	GhCommand string
}

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	config := &Config{
		Repo:       os.Getenv("GITHUB_REPO"),
		PhasesFile: getEnvWithDefault("PHASES_FILE", "phases.yaml"),
		GhCommand:  getEnvWithDefault("GH_COMMAND", "gh"),
	}

	return config, nil
}

// ValidateRepo はリポジトリ指定が "owner/repo" 形式であることを確認します
// ファイルを開く前に呼び出し、不正な場合は処理を開始しません
func (c *Config) ValidateRepo() error {
	if c.Repo == "" {
		return fmt.Errorf("GITHUB_REPO が設定されていません (\"owner/repo\" 形式で指定してください)")
	}

	parts := strings.Split(c.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("リポジトリ指定が不正です: %q (\"owner/repo\" 形式で指定してください)", c.Repo)
	}

	return nil
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
