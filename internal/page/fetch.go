package page

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nao1215/folio/pkg/httpclient"
)

// Fetcher はバックエンドへのリクエストを発行する。*httpclient.Client が満たす。
type Fetcher interface {
	Fetch(ctx context.Context, path string, opts *httpclient.Options, transport httpclient.Doer) (*http.Response, error)
}

// Resource はバックエンドのリソース種別を表す。
type Resource struct {
	// Name は単数形の名前。詳細レスポンスのフィールド名とエラーメッセージに使う。
	Name string
	// Plural は複数形の名前。一覧のパスとフィールド名に使う。
	Plural string
	// Prefix はパスの前置き（例: "/admin"）。
	Prefix string
}

var (
	// Articles は公開記事。
	Articles = Resource{Name: "article", Plural: "articles"}
	// Books は公開書籍。
	Books = Resource{Name: "book", Plural: "books"}
	// AdminArticles は管理者向けの記事（非公開記事を含む）。
	AdminArticles = Resource{Name: "article", Plural: "articles", Prefix: "/admin"}
)

// ListPath は一覧のパスを返す。
func (r Resource) ListPath() string {
	return r.Prefix + "/" + r.Plural
}

// DetailPath はslugで指定した詳細のパスを返す。slugは検証せずにそのまま連結する。
func (r Resource) DetailPath(slug string) string {
	return r.ListPath() + "/" + slug
}

// isSuccess はステータスコードが2xxかどうかを返す。
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// decodeField はJSONオブジェクトから指定フィールドを取り出してdstにデシリアライズする。
// フィールドが存在しないかnullの場合はfalseを返す。
func decodeField(body io.Reader, field string, dst any) (bool, error) {
	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return false, fmt.Errorf("レスポンスボディのデシリアライズに失敗: %w", err)
	}

	raw, ok := envelope[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("フィールド %s のデシリアライズに失敗: %w", field, err)
	}
	return true, nil
}
