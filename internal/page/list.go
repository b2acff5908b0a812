package page

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/nao1215/folio/pkg/httpclient"
)

// latestLimit はトップページに表示する最新記事の件数。
const latestLimit = 5

// LoadList はリソースの一覧を取得する。
//
// ステータスが2xx以外の場合やボディが壊れている場合はエラーにせず空の一覧を返す。
// フィールドが存在しない場合も空の一覧を返す。
// エラーを返すのはトランスポート自体が失敗した場合だけ。
func LoadList[T any](ctx context.Context, f Fetcher, res Resource, opts *httpclient.Options, transport httpclient.Doer) ([]T, error) {
	resp, err := f.Fetch(ctx, res.ListPath(), opts, transport)
	if err != nil {
		return nil, fmt.Errorf("%s一覧の取得に失敗: %w", res.Name, err)
	}
	defer resp.Body.Close()

	items := []T{}
	if !isSuccess(resp.StatusCode) {
		log.Debug("一覧の取得に失敗したため空の一覧を返します", "path", res.ListPath(), "status", resp.StatusCode)
		return items, nil
	}

	if _, err := decodeField(resp.Body, res.Plural, &items); err != nil {
		log.Warn("一覧レスポンスを解釈できないため空の一覧を返します", "path", res.ListPath(), "err", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// LoadArticles は公開記事の一覧を取得する。
func LoadArticles(ctx context.Context, f Fetcher, transport httpclient.Doer) ([]Article, error) {
	return LoadList[Article](ctx, f, Articles, nil, transport)
}

// LoadBooks は公開書籍の一覧を取得する。
func LoadBooks(ctx context.Context, f Fetcher, transport httpclient.Doer) ([]Book, error) {
	return LoadList[Book](ctx, f, Books, nil, transport)
}

// LoadHome はトップページ用に最新の記事を先頭から最大5件返す。
// バックエンドの並び順をそのまま維持する。
func LoadHome(ctx context.Context, f Fetcher, transport httpclient.Doer) ([]Article, error) {
	articles, err := LoadArticles(ctx, f, transport)
	if err != nil {
		return nil, err
	}
	if len(articles) > latestLimit {
		articles = articles[:latestLimit]
	}
	return articles, nil
}
