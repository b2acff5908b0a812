package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Doer はHTTPリクエストを送信するトランスポートを表す。
// *http.Client はこのインターフェースを満たす。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc は関数をDoerとして扱うためのアダプタ。
type DoerFunc func(req *http.Request) (*http.Response, error)

// Do はf(req)を呼び出す。
func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Options はリクエストごとの上書き設定。
type Options struct {
	// Method はHTTPメソッド。空の場合はGET。
	Method string
	// Body はリクエストボディ。
	Body io.Reader
	// Header は追加のリクエストヘッダー。デフォルトヘッダーより優先される。
	Header http.Header
}

// Client はバックエンドAPIへのHTTPクライアント。
// ベースURLとデフォルトのトランスポートだけを持ち、レスポンスの解釈は呼び出し側に任せる。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先バックエンドのベースURL。
	baseURL string
}

// New は新しいHTTPクライアントを生成する。
// baseURLには接続先バックエンドのベースURL（例: "http://localhost:3000"）を指定する。
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL はクライアントの接続先ベースURLを返す。
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Doer はクライアント自身のトランスポートを返す。
// 委譲トランスポートの送信先として使用する。
func (c *Client) Doer() Doer {
	return c.httpClient
}

// Fetch はベースURLとpathを連結したURLにリクエストを送信し、レスポンスをそのまま返す。
//
// Content-Type: application/json を常に設定し、optsのヘッダーで上書きできる。
// コンテキストに設定されたCookie（WithCookies）は常に転送する。
// transportがnilでなければ、クライアント自身のトランスポートの代わりに使用する。
// ステータスコードの解釈とボディのデシリアライズは行わない。
// 呼び出し側がレスポンスボディをCloseする責任を持つ。
func (c *Client) Fetch(ctx context.Context, path string, opts *Options, transport Doer) (*http.Response, error) {
	if opts == nil {
		opts = &Options{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range opts.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	// 呼び出し側がCookieヘッダーを明示した場合はそちらを優先する
	if req.Header.Get("Cookie") == "" {
		for _, cookie := range CookiesFromContext(ctx) {
			req.AddCookie(cookie)
		}
	}

	// コンテキストからリクエストIDを伝播する
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok && req.Header.Get(headerKeyRequestID) == "" {
		req.Header.Set(headerKeyRequestID, requestID)
	}

	if transport == nil {
		transport = c.httpClient
	}
	resp, err := transport.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの送信に失敗: url=%s: %w", url, err)
	}
	return resp, nil
}

// RequestScoped は受信リクエストに紐づく委譲トランスポートを返す。
// 送信リクエストに受信リクエストのCookieを付与してからbaseで送信する。
// baseがnilの場合はhttp.DefaultClientを使用する。
func RequestScoped(r *http.Request, base Doer) Doer {
	if base == nil {
		base = http.DefaultClient
	}
	cookies := r.Cookies()
	return DoerFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get("Cookie") == "" {
			for _, cookie := range cookies {
				req.AddCookie(cookie)
			}
		}
		return base.Do(req)
	})
}

// contextKey はコンテキストキーの型。
type contextKey string

const (
	// contextKeyCookies はコンテキストに転送用Cookieを格納するためのキー。
	contextKeyCookies contextKey = "cookies"
	// contextKeyRequestID はコンテキストにリクエストIDを格納するためのキー。
	contextKeyRequestID contextKey = "request_id"
)

// headerKeyRequestID はリクエストIDを伝播するためのHTTPヘッダーキー。
const headerKeyRequestID = "X-Request-ID"

// WithCookies はコンテキストに転送用のCookieを設定する。
// Fetchはこれらを資格情報として常に送信する。
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, contextKeyCookies, cookies)
}

// CookiesFromContext はWithCookiesで設定されたCookieを返す。
func CookiesFromContext(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(contextKeyCookies).([]*http.Cookie)
	return cookies
}

// WithRequestID はコンテキストにリクエストIDを設定する。
// バックエンドとの通信時にX-Request-IDヘッダーとして伝播される。
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestIDFromContext はWithRequestIDで設定されたリクエストIDを返す。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}
