package page

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nao1215/folio/pkg/httpclient"
)

// newTestBackend はモックバックエンドを起動し、それに接続するクライアントと呼び出し回数を返す。
func newTestBackend(t *testing.T, handler http.HandlerFunc) (*httpclient.Client, *atomic.Int32) {
	t.Helper()

	calls := &atomic.Int32{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	return httpclient.New(ts.URL), calls
}

// respond は指定ステータスとJSONボディで応答するハンドラを返す。
func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}
