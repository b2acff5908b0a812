// Package httpclient はバックエンドAPIへのHTTP通信を行うクライアントを提供する。
//
// ページローダーがバックエンドを呼び出す唯一の経路であり、
// 設定されたベースURLへのリクエスト組み立て、デフォルトヘッダーの付与、
// 資格情報（Cookie）の転送を担当する。レスポンスの解釈は行わない。
package httpclient
