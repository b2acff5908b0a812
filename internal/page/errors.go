package page

import (
	"fmt"
	"net/http"
	"strings"
)

// Error はステータスコード付きのページエラー。
// ホスト側はStatusのエラーページを描画する。
type Error struct {
	// Status はHTTPステータスコード。
	Status int
	// Message は利用者に表示するメッセージ。
	Message string
	// Err は原因となったエラー。ない場合はnil。
	Err error
}

// Error はerrorインターフェースを実装する。
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Unwrap は原因となったエラーを返す。
func (e *Error) Unwrap() error {
	return e.Err
}

// Kind はエラーの種類を返す。404は "not-found"、それ以外は "server-failure"。
func (e *Error) Kind() string {
	if e.Status == http.StatusNotFound {
		return "not-found"
	}
	return "server-failure"
}

// NotFound はリソースが見つからない場合のページエラーを生成する。
func NotFound(resource string) *Error {
	return &Error{Status: http.StatusNotFound, Message: capitalize(resource) + " not found"}
}

// LoadFailed はリソースの取得に失敗した場合のページエラーを生成する。
func LoadFailed(resource string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Failed to load " + resource, Err: cause}
}

// Redirect はリダイレクト指示。エラーとして返され、ホスト側がLocationへ転送する。
type Redirect struct {
	// Status はリダイレクトのHTTPステータスコード。
	Status int
	// Location はリダイレクト先のパス。
	Location string
}

// Error はerrorインターフェースを実装する。
func (r *Redirect) Error() string {
	return fmt.Sprintf("redirect %d %s", r.Status, r.Location)
}

// RedirectToLogin はログイン画面への302リダイレクトを生成する。
func RedirectToLogin() *Redirect {
	return &Redirect{Status: http.StatusFound, Location: LoginPath}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
