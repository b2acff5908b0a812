package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/folio/internal/page"
)

// htmlPage はローダーの結果をHTMLとして描画するハンドラを返す。
func (s *Server) htmlPage(name string, load loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := load(c)
		if err != nil {
			s.renderError(c, err)
			return
		}
		c.HTML(http.StatusOK, name, data)
	}
}

// renderError はリダイレクトまたはエラーページを描画する。
func (s *Server) renderError(c *gin.Context, err error) {
	var redirect *page.Redirect
	if errors.As(err, &redirect) {
		c.Redirect(redirect.Status, redirect.Location)
		return
	}

	status, message := s.classify(c, err)
	c.HTML(status, "error.html", gin.H{"title": message, "status": status, "message": message})
}

// classify はエラーをステータスコードと表示用メッセージに変換し、必要に応じてログに出力する。
func (s *Server) classify(c *gin.Context, err error) (int, string) {
	var pageErr *page.Error
	if errors.As(err, &pageErr) {
		if pageErr.Status >= http.StatusInternalServerError {
			s.logger.Warn("ページの読み込みに失敗しました", "path", c.Request.URL.Path, "err", err)
		}
		return pageErr.Status, pageErr.Message
	}

	// トランスポートの失敗など、ゲートが解釈しないエラー
	s.logger.Error("ページの描画中にエラーが発生しました", "path", c.Request.URL.Path, "err", err)
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// dataResult は /_data が返す描画結果。typeは "data"、"redirect"、"error" のいずれか。
type dataResult struct {
	// Type は結果の種類。
	Type string `json:"type"`
	// Data は描画用データ。Typeが "data" の場合のみ。
	Data gin.H `json:"data,omitempty"`
	// Status はリダイレクトまたはエラーのステータスコード。
	Status int `json:"status,omitempty"`
	// Location はリダイレクト先。
	Location string `json:"location,omitempty"`
	// Message はエラーメッセージ。
	Message string `json:"message,omitempty"`
}

// dataPage はローダーの結果をJSONとして返すハンドラを返す。
// リダイレクトはHTTPのリダイレクトにせず、クライアントが遷移できるよう200で結果として返す。
func (s *Server) dataPage(load loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := load(c)
		if err != nil {
			s.renderDataError(c, err)
			return
		}
		c.JSON(http.StatusOK, dataResult{Type: "data", Data: data})
	}
}

// renderDataError はリダイレクトまたはエラーをJSONで返す。
func (s *Server) renderDataError(c *gin.Context, err error) {
	var redirect *page.Redirect
	if errors.As(err, &redirect) {
		c.JSON(http.StatusOK, dataResult{Type: "redirect", Status: redirect.Status, Location: redirect.Location})
		return
	}

	status, message := s.classify(c, err)
	c.JSON(status, dataResult{Type: "error", Status: status, Message: message})
}
