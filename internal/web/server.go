package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/nao1215/folio/internal/config"
	"github.com/nao1215/folio/internal/page"
	"github.com/nao1215/folio/pkg/httpclient"
	"github.com/nao1215/folio/pkg/middleware"
)

// Server はページサーバーのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// api はバックエンドへのHTTPクライアント。
	api *httpclient.Client
	// gate は管理画面のセッションゲート。
	gate *page.AdminGate
	// logger はアプリケーションログの出力先。
	logger *log.Logger
}

// NewServer は新しいページサーバーを生成する。
// レンダリングモードに応じてバックエンドのURLと管理画面ゲートの資格情報の渡し方を切り替える。
func NewServer(cfg *config.Config, logger *log.Logger) (*Server, error) {
	tmpl, err := newTemplates()
	if err != nil {
		return nil, err
	}

	api := httpclient.New(cfg.BaseURL())

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	var credentials page.Credentials = page.CookieCredentials{}
	if cfg.Mode == config.ModeBrowser {
		// ブラウザと同様にすべてのバックエンド呼び出しでCookieを送る
		router.Use(middleware.AmbientCredentials())
		credentials = page.DelegatedCredentials{Base: api.Doer()}
	}

	s := &Server{
		router: router,
		port:   cfg.Port,
		api:    api,
		gate:   page.NewAdminGate(api, credentials),
		logger: logger,
	}
	s.setupRoutes(cfg.FrontendURL)

	logger.Info("ページサーバーを初期化しました", "mode", cfg.Mode, "api", api.BaseURL())
	return s, nil
}

// Handler はgzip圧縮を適用したHTTPハンドラを返す。
func (s *Server) Handler() http.Handler {
	return gziphandler.GzipHandler(s.router)
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// setupRoutes はルーティングを設定する。
func (s *Server) setupRoutes(frontendURL string) {
	// 公開ページ
	s.router.GET("/", s.htmlPage("home.html", s.loadHome))
	s.router.GET("/articles", s.htmlPage("articles.html", s.loadArticles))
	s.router.GET("/articles/:slug", s.htmlPage("article.html", s.loadArticle))
	s.router.GET("/books", s.htmlPage("books.html", s.loadBooks))
	s.router.GET("/books/:slug", s.htmlPage("book.html", s.loadBook))

	// 管理画面（ログインページはゲート内で除外される）
	admin := s.router.Group("/admin")
	admin.Use(s.requireSession())
	{
		admin.GET("", s.htmlPage("admin.html", s.loadAdmin))
		admin.GET("/articles", s.htmlPage("admin_articles.html", s.loadAdminArticles))
		admin.GET("/login", s.handleLoginPage())
		admin.POST("/login", s.handleLogin())
		admin.POST("/logout", s.handleLogout())
	}

	// クライアントサイド遷移用のJSON
	data := s.router.Group("/_data")
	data.Use(middleware.CORS([]string{frontendURL}))
	{
		// プリフライトはルートに一致しないとCORSミドルウェアまで届かない
		data.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		data.GET("/home", s.dataPage(s.loadHome))
		data.GET("/articles", s.dataPage(s.loadArticles))
		data.GET("/articles/:slug", s.dataPage(s.loadArticle))
		data.GET("/books", s.dataPage(s.loadBooks))
		data.GET("/books/:slug", s.dataPage(s.loadBook))

		dataAdmin := data.Group("/admin")
		dataAdmin.Use(s.requireSessionData())
		{
			dataAdmin.GET("", s.dataPage(s.loadAdmin))
			dataAdmin.GET("/articles", s.dataPage(s.loadAdminArticles))
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "web"})
	})
}
