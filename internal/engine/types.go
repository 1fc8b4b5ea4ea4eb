package engine

import (
	"regexp"

	"github.com/phyten/sortwind/internal/execx"
	"github.com/phyten/sortwind/internal/model"
	"github.com/phyten/sortwind/internal/progress"
	"github.com/phyten/sortwind/internal/rewrite"
)

// Item は並べ替えで変化した 1 つのクラス文字列を表す
type Item struct {
	File   string     `json:"file"`
	Lang   string     `json:"lang"`
	Line   int        `json:"line"`
	Span   model.Span `json:"span"`
	Before string     `json:"before"`
	After  string     `json:"after"`
}

// ItemError は 1 ファイルの処理に失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options は実行オプション
type Options struct {
	RepoDir           string
	Paths             []string
	Excludes          []string
	PathRegex         []string
	PathRegexCompiled []*regexp.Regexp
	ExcludeTypical    bool
	Langs             []string
	MaxFileBytes      int
	Jobs              int
	// Write は変更をファイルへ書き戻す
	Write            bool
	Progress         bool
	Sort             rewrite.Settings
	Runner           execx.Runner      `json:"-"`
	ProgressObserver progress.Observer `json:"-"`
}

// Result は出力
type Result struct {
	Items        []Item      `json:"items"`
	Files        int         `json:"files"`
	ChangedFiles []string    `json:"changed_files"`
	Written      bool        `json:"written"`
	Total        int         `json:"total"`
	ElapsedMS    int64       `json:"elapsed_ms"`
	Errors       []ItemError `json:"errors,omitempty"`
	ErrorCount   int         `json:"error_count"`
}

// Stage 名
const (
	StageRead    = "read"
	StageRewrite = "rewrite"
	StageWrite   = "write"
)
