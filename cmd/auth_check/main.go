package main

import (
	"flag"
	"fmt"
	"os"

	"phaseimport/api"
	"phaseimport/config"
	"phaseimport/utils"
)

func main() {
	// ヘルプフラグの定義
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	utils.LogInfo("gh 認証確認ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// ghクライアントの初期化
	ghClient := api.NewGhClient(cfg)

	// 認証チェック
	utils.LogInfo("gh コマンドの認証を確認しています...")
	if err := ghClient.CheckAuth(); err != nil {
		utils.LogError("gh 認証エラー: %v", err)
		utils.LogError("gh auth login で認証してから再実行してください。")
		os.Exit(1)
	}

	utils.LogInfo("gh 認証成功！")
	utils.LogInfo("イシュー一括登録ツールを実行できます。")
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
gh 認証確認ツール

使用方法:
  %s [オプション]

オプション:
  -help               このヘルプを表示する

環境変数:
  GH_COMMAND          ghコマンドの名前またはパス (デフォルト: gh)

説明:
  このツールは gh コマンドがインストールされ、GitHubへの認証が
  完了しているかを確認します。認証が成功すれば、イシュー一括登録
  ツールも正常に動作する可能性が高いです。
`, os.Args[0])
}
