package page

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nao1215/folio/pkg/httpclient"
)

const (
	// LoginPath は管理画面のログインページのパス。ゲートの対象外。
	LoginPath = "/admin/login"
	// SessionCookieName はバックエンドが発行するセッションCookieの名前。
	SessionCookieName = "session_id"
)

// Credentials は管理画面ゲートがバックエンドに資格情報を渡す方法を表す。
// 実行環境ごとに実装を切り替え、ゲートのロジックは共通にする。
type Credentials interface {
	// Authorize は受信リクエストから、バックエンド呼び出しに使うオプションとトランスポートを返す。
	// 資格情報がないことが呼び出し前に分かる場合はokにfalseを返す。
	Authorize(r *http.Request) (opts *httpclient.Options, transport httpclient.Doer, ok bool)
}

// CookieCredentials はサーバーサイドレンダリング用の実装。
// 受信リクエストのセッションCookieを読み取り、Cookieヘッダーとして明示的に付け直す。
// サーバー側のトランスポートはCookieを自動で転送しないため。
type CookieCredentials struct{}

// Authorize はCredentialsを実装する。
func (CookieCredentials) Authorize(r *http.Request) (*httpclient.Options, httpclient.Doer, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil, false
	}
	opts := &httpclient.Options{
		Header: http.Header{
			"Cookie": []string{SessionCookieName + "=" + cookie.Value},
		},
	}
	return opts, nil, true
}

// DelegatedCredentials はクライアントサイドレンダリング用の実装。
// Cookieを直接読まず、受信リクエストの資格情報を自動で付与する委譲トランスポートに任せる。
type DelegatedCredentials struct {
	// Base は委譲トランスポートが最終的に使用するトランスポート。nilならhttp.DefaultClient。
	Base httpclient.Doer
}

// Authorize はCredentialsを実装する。
func (d DelegatedCredentials) Authorize(r *http.Request) (*httpclient.Options, httpclient.Doer, bool) {
	return nil, httpclient.RequestScoped(r, d.Base), true
}

// AdminGate は管理画面のセッションゲート。
// セッションの検証はバックエンドの /me に委譲し、自身ではトークンを検証しない。
type AdminGate struct {
	// fetcher はバックエンドへのクライアント。
	fetcher Fetcher
	// credentials は資格情報の渡し方。
	credentials Credentials
}

// NewAdminGate は新しい管理画面ゲートを生成する。
func NewAdminGate(f Fetcher, credentials Credentials) *AdminGate {
	return &AdminGate{fetcher: f, credentials: credentials}
}

// Check はリクエストを通すかリダイレクトするかを判定する。
//
// ログインページはバックエンドを呼ばずに常に通す（ユーザーはnil）。
// 資格情報がない場合、または /me が2xx以外を返した場合は *Redirect を返す。
// それ以外は /me のレスポンスをユーザーとして返す。
// トランスポートの失敗とボディの破損は通常のエラーとして返す。
func (g *AdminGate) Check(r *http.Request) (User, error) {
	if r.URL.Path == LoginPath {
		return nil, nil
	}

	opts, transport, ok := g.credentials.Authorize(r)
	if !ok {
		return nil, RedirectToLogin()
	}

	resp, err := g.fetcher.Fetch(r.Context(), "/me", opts, transport)
	if err != nil {
		return nil, fmt.Errorf("セッションの確認に失敗: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, RedirectToLogin()
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("ユーザー情報のデシリアライズに失敗: %w", err)
	}
	if user == nil {
		user = User{}
	}
	return user, nil
}

// LoadArticles は管理者向けの記事一覧を資格情報付きで取得する。
// 資格情報がない場合は *Redirect を返す。
func (g *AdminGate) LoadArticles(r *http.Request) ([]Article, error) {
	opts, transport, ok := g.credentials.Authorize(r)
	if !ok {
		return nil, RedirectToLogin()
	}
	return LoadList[Article](r.Context(), g.fetcher, AdminArticles, opts, transport)
}

// loginRequest はバックエンドの /login に送るJSON構造。
type loginRequest struct {
	// Email はログインに使うメールアドレス。
	Email string `json:"email"`
	// Password はパスワード。
	Password string `json:"password"`
}

// Login はログイン情報をバックエンドの /login に転送し、
// ブラウザへ中継すべきCookie（Set-Cookie）を返す。
// 認証に失敗した場合は401の *Error を返す。
func (g *AdminGate) Login(ctx context.Context, email, password string) ([]*http.Cookie, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("リクエストボディのシリアライズに失敗: %w", err)
	}

	resp, err := g.fetcher.Fetch(ctx, "/login", &httpclient.Options{
		Method: http.MethodPost,
		Body:   bytes.NewReader(body),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("ログインリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &Error{Status: http.StatusUnauthorized, Message: "Invalid email or password"}
	case !isSuccess(resp.StatusCode):
		return nil, &Error{Status: http.StatusInternalServerError, Message: "Failed to log in", Err: fmt.Errorf("status=%d", resp.StatusCode)}
	}
	return resp.Cookies(), nil
}

// Logout はセッションの破棄をバックエンドの /logout に転送し、
// ブラウザへ中継すべきCookie（Set-Cookie）を返す。
// 資格情報がない場合はバックエンドを呼ばずにnilを返す。
func (g *AdminGate) Logout(r *http.Request) ([]*http.Cookie, error) {
	opts, transport, ok := g.credentials.Authorize(r)
	if !ok {
		return nil, nil
	}
	if opts == nil {
		opts = &httpclient.Options{}
	}
	opts.Method = http.MethodPost

	resp, err := g.fetcher.Fetch(r.Context(), "/logout", opts, transport)
	if err != nil {
		return nil, fmt.Errorf("ログアウトリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &Error{Status: http.StatusInternalServerError, Message: "Failed to log out", Err: fmt.Errorf("status=%d", resp.StatusCode)}
	}
	return resp.Cookies(), nil
}
