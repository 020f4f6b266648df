package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"phaseimport/models"
	"phaseimport/utils"
)

// CSVProcessor はフェーズCSVファイルの読み込みと行の解析を担当します
type CSVProcessor struct{}

// NewCSVProcessor は新しいCSVプロセッサーを作成します
func NewCSVProcessor() *CSVProcessor {
	return &CSVProcessor{}
}

// ReadPhaseCSV はフェーズCSVを読み込みます
// 先頭行をヘッダーとして、各データ行をヘッダー名→値のマップに変換します
func (p *CSVProcessor) ReadPhaseCSV(filePath string) ([]models.CSVRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("CSVオープンエラー: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // 列数の不一致は許容する
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV読み込みエラー: %w", err)
	}

	// ヘッダーのみ（またはデータなし）の場合は空として扱う
	if len(records) < 2 {
		utils.LogInfo("CSVを読み込みました: %s (0 行)", filePath)
		return nil, nil
	}

	headers := records[0]
	result := make([]models.CSVRecord, 0, len(records)-1)

	for _, record := range records[1:] {
		rowData := make(models.CSVRecord)
		for j := 0; j < min(len(headers), len(record)); j++ {
			rowData[headers[j]] = record[j]
		}
		result = append(result, rowData)
	}

	utils.LogInfo("CSVを読み込みました: %s (%d 行)", filePath, len(result))
	return result, nil
}

// ParseIssueRow はCSVレコードをイシュー行に変換します
// タイトルが空（空白のみを含む）の場合は ok=false を返し、呼び出し側で行をスキップします
func (p *CSVProcessor) ParseIssueRow(record models.CSVRecord) (models.IssueRow, bool) {
	title := strings.TrimSpace(record["title"])
	if title == "" {
		return models.IssueRow{}, false
	}

	row := models.IssueRow{
		Title: title,
		Body:  record["body"],
	}

	// ラベルをカンマで分割し、空の要素は捨てる
	if labelsRaw := strings.TrimSpace(record["labels"]); labelsRaw != "" {
		for _, label := range strings.Split(labelsRaw, ",") {
			if label = strings.TrimSpace(label); label != "" {
				row.Labels = append(row.Labels, label)
			}
		}
	}

	return row, true
}
