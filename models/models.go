package models

// Phase は1つのCSVファイルと登録先マイルストーンの対応を表します
type Phase struct {
	File      string `yaml:"file"`
	Milestone string `yaml:"milestone"`
}

// CSVRecord はCSVの1行を表します (ヘッダー名→値のマップ)
type CSVRecord map[string]string

// IssueRow はCSVから解析した1件のイシュー行を表します
type IssueRow struct {
	Title  string
	Body   string
	Labels []string
}

// IssueRequest はイシュー作成リクエスト1件を表します
type IssueRequest struct {
	Repo      string // "owner/repo" 形式
	Title     string
	Body      string
	Milestone string
	Labels    []string
}
