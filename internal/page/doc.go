// Package page はページごとのデータローダー（ページゲート）を提供する。
//
// 各ローダーはhttpclientでバックエンドを呼び出し、ステータスコードに応じて
// 描画用データ、空のフォールバックデータ、ログイン画面へのリダイレクト、
// ステータスコード付きのページエラーのいずれかを返す。
// 一覧ページはエラーを表示せず空の一覧に縮退し、詳細ページは404と500を区別する。
// 管理画面はセッションの確認をバックエンドの /me に委譲する。
package page
