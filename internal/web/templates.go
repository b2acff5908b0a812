package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	humanize "github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// newTemplates は埋め込みテンプレートを読み込む。
// 各ページのテンプレート名はファイル名（例: "articles.html"）になる。
func newTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"humanizeTime": humanizeTime,
		"safeHTML":     safeHTML,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("テンプレートの読み込みに失敗: %w", err)
	}
	return tmpl, nil
}

// humanizeTime はRFC3339形式の日時を「3 days ago」のような相対表記にする。
// 解釈できない場合は元の文字列を返す。
func humanizeTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return humanize.Time(t)
}

// safeHTML はバックエンドでMarkdownから変換済みの本文をエスケープせずに埋め込む。
func safeHTML(s string) template.HTML {
	return template.HTML(s) //nolint:gosec
}
