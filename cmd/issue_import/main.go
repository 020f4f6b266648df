package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"phaseimport/api"
	"phaseimport/config"
	"phaseimport/services"
	"phaseimport/utils"
)

func main() {
	// コマンドラインフラグの定義
	dryRun := flag.Bool("dry-run", false, "コマンドの表示のみを行い、イシューは作成しない")
	repo := flag.String("repo", "", "対象リポジトリ（owner/repo 形式、環境変数 GITHUB_REPO を上書き）")
	phasesFile := flag.String("phases", "", "フェーズ定義YAMLファイルのパス（環境変数 PHASES_FILE を上書き）")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	// 開始時間の記録
	startTime := time.Now()

	utils.LogInfo("GitHub イシュー一括登録ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインで指定された場合、設定を上書き
	if *repo != "" {
		cfg.Repo = *repo
	}
	if *phasesFile != "" {
		cfg.PhasesFile = *phasesFile
	}

	// リポジトリ指定の検証（ファイルを開く前に行う）
	if err := cfg.ValidateRepo(); err != nil {
		utils.LogError("設定エラー: %v", err)
		os.Exit(1)
	}

	// フェーズ定義の読み込み（ファイルがなければ既定の5フェーズを使用）
	phases, err := config.LoadPhases(cfg.PhasesFile)
	if err != nil {
		utils.LogError("フェーズ定義の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}
	utils.LogInfo("対象リポジトリ: %s (フェーズ数: %d)", cfg.Repo, len(phases))

	ghClient := api.NewGhClient(cfg)

	// gh認証の確認（dry-runの場合は gh がなくても動作させる）
	if !*dryRun {
		utils.LogInfo("gh コマンドの認証を確認しています...")
		if err := ghClient.CheckAuth(); err != nil {
			utils.LogError("gh 認証エラー: %v", err)
			utils.LogError("gh auth login で認証してから再実行してください。")
			os.Exit(1)
		}
		utils.LogInfo("gh 認証確認完了")
	} else {
		utils.LogInfo("dry-run モード: イシューは作成しません")
	}

	// 一括登録の実行
	csvProc := services.NewCSVProcessor()
	importService := services.NewImportService(cfg, ghClient, csvProc, *dryRun)

	if _, err := importService.ImportAll(phases); err != nil {
		utils.LogError("イシュー一括登録エラー: %v", err)
		os.Exit(1)
	}

	// 処理時間の表示
	elapsed := time.Since(startTime)
	utils.LogInfo("処理が完了しました。合計実行時間: %s", elapsed)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
GitHub イシュー一括登録ツール

使用方法:
  %s [オプション]

オプション:
  -dry-run            コマンドの表示のみを行い、イシューは作成しない
  -repo owner/repo    対象リポジトリを指定する（環境変数 GITHUB_REPO を上書き）
  -phases ファイル     フェーズ定義YAMLファイルのパスを指定する
  -help               このヘルプを表示する

環境変数:
  GITHUB_REPO         対象リポジトリ（owner/repo 形式、必須）
  PHASES_FILE         フェーズ定義YAMLファイルのパス (デフォルト: phases.yaml)
  GH_COMMAND          ghコマンドの名前またはパス (デフォルト: gh)

説明:
  このツールはフェーズごとのCSVファイル（title, body, labels列）を読み込み、
  gh issue create でGitHubイシューを一括作成します。各CSVファイルの行は
  そのフェーズのマイルストーンに紐づけられます。

  フェーズ定義ファイルが存在しない場合は、既定の5フェーズ
  (phase-1-issues.csv 〜 phase-5-issues.csv) を使用します。

  フェーズ定義YAMLの例:
    - file: phase-1-issues.csv
      milestone: "Phase 1 – Ontology Ingestion & Canonical Model"

例:
  # dry-runで実行内容を確認
  %s -repo myorg/myrepo -dry-run

  # イシューを一括作成
  %s -repo myorg/myrepo
`, os.Args[0], os.Args[0], os.Args[0])
}
