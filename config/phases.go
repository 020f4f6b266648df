package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"phaseimport/models"
)

// DefaultPhases はフェーズ定義ファイルがない場合に使用される既定のフェーズ一覧です
var DefaultPhases = []models.Phase{
	{File: "phase-1-issues.csv", Milestone: "Phase 1 – Ontology Ingestion & Canonical Model"},
	{File: "phase-2-issues.csv", Milestone: "Phase 2 – LiveView Textual Documentation UI"},
	{File: "phase-3-issues.csv", Milestone: "Phase 3 – Interactive Graph Visualization"},
	{File: "phase-4-issues.csv", Milestone: "Phase 4 – UX, Property Docs & Accessibility"},
	{File: "phase-5-issues.csv", Milestone: "Phase 5 – Export, CI/CD & Deployment"},
}

// LoadPhases はYAMLのフェーズ定義ファイルを読み込みます
// ファイルが存在しない場合は既定のフェーズ一覧を返します
func LoadPhases(path string) ([]models.Phase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPhases, nil
		}
		return nil, fmt.Errorf("フェーズ定義ファイル読み込みエラー: %w", err)
	}

	var phases []models.Phase
	if err := yaml.Unmarshal(data, &phases); err != nil {
		return nil, fmt.Errorf("フェーズ定義ファイル解析エラー: %w", err)
	}

	if len(phases) == 0 {
		return nil, fmt.Errorf("フェーズ定義が空です: %s", path)
	}

	for i, phase := range phases {
		if phase.File == "" || phase.Milestone == "" {
			return nil, fmt.Errorf("フェーズ定義 %d 番目: file と milestone は必須です", i+1)
		}
	}

	return phases, nil
}
