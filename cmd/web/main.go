// ページサーバーのエントリポイント。
// バックエンドAPIから記事と書籍を取得してページを描画し、管理画面へのアクセスをセッションで制限する。
package main

import (
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/nao1215/folio/internal/config"
	"github.com/nao1215/folio/internal/web"
)

var (
	configPath string
	port       string
	debug      bool
)

func init() {
	flag.StringVarP(&configPath, "config", "c", "", "TOML形式の設定ファイル")
	flag.StringVarP(&port, "port", "p", "", "リッスンポート（設定ファイルと環境変数より優先）")
	flag.BoolVarP(&debug, "debug", "D", false, "デバッグログを出力する")
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "web",
	})
	log.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("設定の読み込みに失敗", "err", err)
	}
	if port != "" {
		cfg.Port = port
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("不明なログレベルのためinfoを使用します", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	server, err := web.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("ページサーバーの初期化に失敗", "err", err)
	}

	logger.Info("ページサーバーを起動します", "addr", ":"+cfg.Port, "mode", cfg.Mode)
	if err := server.Run(); err != nil {
		logger.Fatal("ページサーバーの起動に失敗", "err", err)
	}
}
