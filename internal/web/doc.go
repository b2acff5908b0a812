// Package web はページを描画するHTTPサーバーを提供する。
//
// ルートごとにpackage pageのローダーを呼び出し、その結果（データ、リダイレクト、
// ページエラー）をHTMLとして描画する。/_data 以下では同じ結果をJSONで返し、
// クライアントサイド遷移から利用できるようにする。
package web
