package page

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// descriptionLimit は概要の最大文字数（省略記号を除く）。
const descriptionLimit = 150

// Describe はHTML本文からプレーンテキストの概要を生成する。
//
// タグを取り除いて前後の空白を削除し、150文字以下ならそのまま返す。
// 超える場合は先頭150文字を単語の途中で切らないよう直前の空白まで戻し、"..." を付ける。
func Describe(htmlText string) string {
	text := strings.TrimSpace(stripTags(htmlText))
	runes := []rune(text)
	if len(runes) <= descriptionLimit {
		return text
	}

	cut := string(runes[:descriptionLimit])
	// 151文字目が空白なら150文字目で単語が終わっている
	if !unicode.IsSpace(runes[descriptionLimit]) {
		if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace) + "..."
}

// stripTags はHTMLからテキストノードだけを連結して返す。
// script要素とstyle要素の中身は含めない。
func stripTags(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawTextTag(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
