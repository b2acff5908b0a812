// Package middleware はページサーバーで使用する共通のGinミドルウェアを提供する。
//
// パニックリカバリ、リクエストログ、リクエストIDの発行、
// 資格情報（Cookie）のコンテキストへの引き渡し、CORS設定を含む。
package middleware
