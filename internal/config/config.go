// Package config はページサーバーの設定を読み込む。
//
// 設定値はデフォルト値、TOMLファイル、環境変数の順に上書きされる。
// 起動時に一度だけ解決され、以降は読み取り専用として扱う。
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goware/urlx"
)

// Mode はページのレンダリングを行う実行環境を表す。
type Mode string

const (
	// ModeServer はサーバーサイドレンダリング。内部ネットワークのアドレスでバックエンドに接続し、
	// 管理画面ゲートはCookieを明示的に転送する。
	ModeServer Mode = "server"
	// ModeBrowser はクライアントサイドレンダリング相当。公開アドレスでバックエンドに接続し、
	// 管理画面ゲートは委譲トランスポートで資格情報を転送する。
	ModeBrowser Mode = "browser"
)

// defaultAPIURL はバックエンドのURLが設定されていない場合のフォールバック値。
const defaultAPIURL = "http://localhost:3000"

// ErrInvalidMode は未知のレンダリングモードが指定されたことを表す。
var ErrInvalidMode = errors.New("不正なレンダリングモード")

// Config はページサーバーの設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string `toml:"port"`
	// Mode はレンダリングの実行環境。
	Mode Mode `toml:"mode"`
	// PublicAPIURL はブラウザから到達可能なバックエンドのURL。
	PublicAPIURL string `toml:"public_api_url"`
	// InternalAPIURL は内部ネットワーク（Dockerネットワーク等）でのバックエンドのURL。
	InternalAPIURL string `toml:"internal_api_url"`
	// FrontendURL は /_data エンドポイントへのCORSを許可するオリジン。
	FrontendURL string `toml:"frontend_url"`
	// LogLevel はログレベル（debug, info, warn, error）。
	LogLevel string `toml:"log_level"`
}

// Default はデフォルト値の設定を返す。
func Default() *Config {
	return &Config{
		Port:           "8080",
		Mode:           ModeServer,
		PublicAPIURL:   defaultAPIURL,
		InternalAPIURL: defaultAPIURL,
		FrontendURL:    "http://localhost:5173",
		LogLevel:       "info",
	}
}

// Load は設定を読み込む。
// pathが空でなければTOMLファイルを読み込み、その後に環境変数で上書きする。
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルのパースに失敗: %w", err)
		}
	}

	cfg.Port = getEnvOr("PORT", cfg.Port)
	cfg.Mode = Mode(getEnvOr("RENDER_MODE", string(cfg.Mode)))
	cfg.PublicAPIURL = getEnvOr("API_BASE_URL", cfg.PublicAPIURL)
	cfg.InternalAPIURL = getEnvOr("INTERNAL_API_URL", cfg.InternalAPIURL)
	cfg.FrontendURL = getEnvOr("FRONTEND_URL", cfg.FrontendURL)
	cfg.LogLevel = getEnvOr("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証し、URLを正規化する。
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeServer, ModeBrowser:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	var err error
	if c.PublicAPIURL, err = normalizeURL(c.PublicAPIURL, defaultAPIURL); err != nil {
		return fmt.Errorf("API_BASE_URLが不正: %w", err)
	}
	if c.InternalAPIURL, err = normalizeURL(c.InternalAPIURL, defaultAPIURL); err != nil {
		return fmt.Errorf("INTERNAL_API_URLが不正: %w", err)
	}
	return nil
}

// BaseURL は実行環境に応じたバックエンドのベースURLを返す。
func (c *Config) BaseURL() string {
	if c.Mode == ModeBrowser {
		return c.PublicAPIURL
	}
	return c.InternalAPIURL
}

// normalizeURL はURLを正規化する。空の場合はfallbackを返す。
func normalizeURL(raw, fallback string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	u, err := urlx.Parse(raw)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	norm, err := urlx.Normalize(u)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(norm, "/"), nil
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
