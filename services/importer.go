package services

import (
	"fmt"
	"os"
	"time"

	"phaseimport/api"
	"phaseimport/config"
	"phaseimport/models"
	"phaseimport/utils"
)

// ImportService はフェーズCSVからGitHubイシューへの一括登録を処理します
type ImportService struct {
	config  *config.Config
	creator api.IssueCreator
	csvProc *CSVProcessor
	dryRun  bool
}

// NewImportService は新しい一括登録サービスを作成します
// dryRun が true の場合、コマンドの表示のみを行いイシューは作成しません
func NewImportService(cfg *config.Config, creator api.IssueCreator, csvProc *CSVProcessor, dryRun bool) *ImportService {
	return &ImportService{
		config:  cfg,
		creator: creator,
		csvProc: csvProc,
		dryRun:  dryRun,
	}
}

// ImportResult は一括登録の結果件数を保持します
type ImportResult struct {
	Created      int // 作成したイシュー数
	SkippedRows  int // タイトルが空のためスキップした行数
	SkippedFiles int // ファイルが存在しないためスキップしたフェーズ数
}

// ImportAll は設定されたすべてのフェーズを定義順に処理します
// 作成順がファイル内の行順・フェーズの定義順と一致するよう、常に1件ずつ直列に実行します
// イシュー作成の失敗は即座に全体を中断します
func (s *ImportService) ImportAll(phases []models.Phase) (*ImportResult, error) {
	startTime := time.Now()
	defer utils.TrackTime(startTime, "イシュー一括登録")

	result := &ImportResult{}

	for _, phase := range phases {
		if err := s.importPhase(phase, result); err != nil {
			return result, err
		}
	}

	utils.LogInfo("イシューの一括登録が完了しました: 作成=%d, スキップ行=%d, スキップファイル=%d",
		result.Created, result.SkippedRows, result.SkippedFiles)
	return result, nil
}

// importPhase は1つのフェーズCSVを処理します
// ファイルが存在しない場合は警告のみで次のフェーズへ進みます
func (s *ImportService) importPhase(phase models.Phase, result *ImportResult) error {
	if _, err := os.Stat(phase.File); os.IsNotExist(err) {
		utils.LogWarn("ファイルが見つからないためスキップします: %s", phase.File)
		result.SkippedFiles++
		return nil
	}

	utils.LogInfo("=== %s → マイルストーン '%s' ===", phase.File, phase.Milestone)

	records, err := s.csvProc.ReadPhaseCSV(phase.File)
	if err != nil {
		return fmt.Errorf("CSV読み込みエラー: %w", err)
	}

	for i, record := range records {
		row, ok := s.csvProc.ParseIssueRow(record)
		if !ok {
			// ヘッダー行があるため、表示する行番号は i+2
			utils.LogWarn("行 %d: タイトルが空のためスキップします", i+2)
			result.SkippedRows++
			continue
		}

		req := models.IssueRequest{
			Repo:      s.config.Repo,
			Title:     row.Title,
			Body:      row.Body,
			Milestone: phase.Milestone,
			Labels:    row.Labels,
		}

		// 監査用にコマンドラインを常に表示する（dry-runでも表示）
		fmt.Println("$ " + s.creator.CommandLine(req))

		if s.dryRun {
			continue
		}

		if err := s.creator.CreateIssue(req); err != nil {
			return fmt.Errorf("行 %d のイシュー作成に失敗しました: %w", i+2, err)
		}
		result.Created++
	}

	return nil
}
