package page

// Article はバックエンドが返す記事。
// 一覧ではHTMLを含まず、管理者向けAPIではMarkdownと公開状態を含む。
type Article struct {
	// ID は記事の一意識別子（UUID）。
	ID string `json:"id"`
	// Title は記事のタイトル。
	Title string `json:"title"`
	// Slug はURLに使用する識別子。
	Slug string `json:"slug"`
	// HTML はMarkdownから変換済みの本文。
	HTML string `json:"html,omitempty"`
	// Markdown は本文のMarkdownソース。管理者向けAPIのみ。
	Markdown string `json:"markdown,omitempty"`
	// Published は公開状態。管理者向けAPIのみ意味を持つ。
	Published bool `json:"published,omitempty"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at,omitempty"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Book はバックエンドが返す書籍。
type Book struct {
	// ID は書籍の一意識別子（UUID）。
	ID string `json:"id"`
	// Title は書籍のタイトル。
	Title string `json:"title"`
	// Slug はURLに使用する識別子。
	Slug string `json:"slug"`
	// Markdown は紹介文のMarkdownソース。
	Markdown string `json:"markdown,omitempty"`
	// HTML はMarkdownから変換済みの紹介文。
	HTML string `json:"html,omitempty"`
	// ImageURL は書影の画像URL。
	ImageURL string `json:"image_url,omitempty"`
	// Published は公開状態。
	Published bool `json:"published"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at,omitempty"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ArticlePage は記事詳細ページの描画データ。
type ArticlePage struct {
	// Article は表示する記事。
	Article Article `json:"article"`
	// Description は本文から生成したプレーンテキストの概要。metaタグ用。
	Description string `json:"description"`
}

// User は /me が返す認証済みユーザーのレコード。
// このパッケージは内容を解釈せず、そのままページに渡す。
type User map[string]any

// Email はユーザーのメールアドレスを返す。含まれていなければ空文字列。
func (u User) Email() string {
	email, _ := u["email"].(string)
	return email
}
