package web

import (
	"github.com/gin-gonic/gin"
	"github.com/nao1215/folio/internal/page"
	"github.com/nao1215/folio/pkg/httpclient"
)

// loader はルートごとのデータローダー。
// 描画用のデータ、または *page.Error / *page.Redirect / その他のエラーを返す。
type loader func(c *gin.Context) (gin.H, error)

// contextKeyUser はGinコンテキストに認証済みユーザーを格納するためのキー。
const contextKeyUser = "user"

// requestTransport は受信リクエストのCookieを引き継ぐ委譲トランスポートを返す。
// トップページのローダーだけが使う。他の公開ページはクライアント自身のトランスポートで取得する。
func (s *Server) requestTransport(c *gin.Context) httpclient.Doer {
	return httpclient.RequestScoped(c.Request, s.api.Doer())
}

func (s *Server) loadHome(c *gin.Context) (gin.H, error) {
	articles, err := page.LoadHome(c.Request.Context(), s.api, s.requestTransport(c))
	if err != nil {
		return nil, err
	}
	return gin.H{"latestArticles": articles}, nil
}

func (s *Server) loadArticles(c *gin.Context) (gin.H, error) {
	articles, err := page.LoadArticles(c.Request.Context(), s.api, nil)
	if err != nil {
		return nil, err
	}
	return gin.H{"title": "Articles", "articles": articles}, nil
}

func (s *Server) loadArticle(c *gin.Context) (gin.H, error) {
	p, err := page.LoadArticle(c.Request.Context(), s.api, c.Param("slug"), nil)
	if err != nil {
		return nil, err
	}
	return gin.H{"title": p.Article.Title, "article": p.Article, "description": p.Description}, nil
}

func (s *Server) loadBooks(c *gin.Context) (gin.H, error) {
	books, err := page.LoadBooks(c.Request.Context(), s.api, nil)
	if err != nil {
		return nil, err
	}
	return gin.H{"title": "Books", "books": books}, nil
}

func (s *Server) loadBook(c *gin.Context) (gin.H, error) {
	book, err := page.LoadBook(c.Request.Context(), s.api, c.Param("slug"), nil)
	if err != nil {
		return nil, err
	}
	return gin.H{"title": book.Title, "book": book}, nil
}

func (s *Server) loadAdmin(c *gin.Context) (gin.H, error) {
	return gin.H{"title": "Admin", "user": currentUser(c)}, nil
}

func (s *Server) loadAdminArticles(c *gin.Context) (gin.H, error) {
	articles, err := s.gate.LoadArticles(c.Request)
	if err != nil {
		return nil, err
	}
	return gin.H{"title": "Admin", "user": currentUser(c), "articles": articles}, nil
}

// currentUser はrequireSessionが格納したユーザーを返す。
func currentUser(c *gin.Context) page.User {
	v, _ := c.Get(contextKeyUser)
	user, _ := v.(page.User)
	return user
}
