package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nao1215/folio/pkg/httpclient"
)

// errMissingField はレスポンスに期待するフィールドがないことを表す。
var errMissingField = errors.New("レスポンスにフィールドが含まれていない")

// LoadDetail はslugで指定したリソースを取得する。
//
// 404は NotFound、それ以外の2xx以外のステータスは LoadFailed（500）になる。
// 2xxでもボディが壊れている場合やフィールドが存在しない場合は LoadFailed を返す。
// トランスポート自体の失敗はそのままラップして返す。
func LoadDetail[T any](ctx context.Context, f Fetcher, res Resource, slug string, transport httpclient.Doer) (T, error) {
	var item T

	resp, err := f.Fetch(ctx, res.DetailPath(slug), nil, transport)
	if err != nil {
		return item, fmt.Errorf("%sの取得に失敗: %w", res.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return item, NotFound(res.Name)
	}
	if !isSuccess(resp.StatusCode) {
		return item, LoadFailed(res.Name, fmt.Errorf("status=%d", resp.StatusCode))
	}

	found, err := decodeField(resp.Body, res.Name, &item)
	if err != nil {
		return item, LoadFailed(res.Name, err)
	}
	if !found {
		return item, LoadFailed(res.Name, fmt.Errorf("%w: %s", errMissingField, res.Name))
	}
	return item, nil
}

// LoadArticle は記事詳細を取得し、本文から概要を生成する。
func LoadArticle(ctx context.Context, f Fetcher, slug string, transport httpclient.Doer) (*ArticlePage, error) {
	article, err := LoadDetail[Article](ctx, f, Articles, slug, transport)
	if err != nil {
		return nil, err
	}
	return &ArticlePage{
		Article:     article,
		Description: Describe(article.HTML),
	}, nil
}

// LoadBook は書籍詳細を取得する。
func LoadBook(ctx context.Context, f Fetcher, slug string, transport httpclient.Doer) (*Book, error) {
	book, err := LoadDetail[Book](ctx, f, Books, slug, transport)
	if err != nil {
		return nil, err
	}
	return &book, nil
}
