package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/folio/internal/page"
)

// requireSession は管理画面ゲートを適用するGinミドルウェアを返す。
// 通過した場合はユーザーをコンテキストに格納し、そうでなければリダイレクトまたはエラーページで中断する。
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.gate.Check(c.Request)
		if err != nil {
			s.renderError(c, err)
			c.Abort()
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// requireSessionData は /_data 用の管理画面ゲート。結果をJSONで返す。
func (s *Server) requireSessionData() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.gate.Check(c.Request)
		if err != nil {
			s.renderDataError(c, err)
			c.Abort()
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// handleLoginPage はログインフォームを描画するハンドラを返す。
func (s *Server) handleLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"title": "Log in", "email": "", "message": ""})
	}
}

// handleLogin はログインフォームの内容をバックエンドに転送するハンドラを返す。
// 成功した場合はバックエンドが発行したCookieをそのままブラウザに中継する。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		cookies, err := s.gate.Login(c.Request.Context(), email, c.PostForm("password"))
		if err != nil {
			var pageErr *page.Error
			if errors.As(err, &pageErr) && pageErr.Status == http.StatusUnauthorized {
				c.HTML(http.StatusUnauthorized, "login.html", gin.H{"title": "Log in", "email": email, "message": pageErr.Message})
				return
			}
			s.renderError(c, err)
			return
		}

		for _, cookie := range cookies {
			http.SetCookie(c.Writer, cookie)
		}
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

// handleLogout はセッションの破棄をバックエンドに転送するハンドラを返す。
func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookies, err := s.gate.Logout(c.Request)
		if err != nil {
			s.renderError(c, err)
			return
		}

		for _, cookie := range cookies {
			http.SetCookie(c.Writer, cookie)
		}
		c.Redirect(http.StatusSeeOther, page.LoginPath)
	}
}
