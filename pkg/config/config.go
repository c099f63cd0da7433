package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config アプリケーション全体の設定。環境変数（と任意の設定ファイル）から Viper で読む。
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Line LineConfig
	Data DataConfig
}

// AppConfig アプリケーション全般。
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig HTTPサーバーの待ち受け設定。
type HTTPConfig struct {
	Host string
	Port int
}

// Addr は待ち受けアドレス（host:port）を返します。
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LineConfig LINE Messaging API まわりの設定。
type LineConfig struct {
	ChannelAccessToken string  // チャネルアクセストークン。未設定でも起動はするが返信が失敗する
	ReplyEndpoint      string  // 返信エンドポイント。通常は既定値のまま
	AllowedSourceIDs   string  // 処理を許可する送信元IDのカンマ区切り。空なら全許可
	CommandPrefix      string  // 起動接頭辞。空なら全テキストが対象
	ReplyRatePerSecond float64 // 返信APIのレート制限（req/s）
	ReplyBurst         int     // レート制限のバースト
}

// AllowedSourceIDList はカンマ区切りの許可リストをスライスへ分解します。
// 前後の空白は除き、空の要素は捨てる。
func (c LineConfig) AllowedSourceIDList() []string {
	if strings.TrimSpace(c.AllowedSourceIDs) == "" {
		return nil
	}
	parts := strings.Split(c.AllowedSourceIDs, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// DataConfig 店側が手で更新する外部データファイルの場所。
type DataConfig struct {
	ProductsPath string // 商品マスタ products.json
	StockPath    string // 在庫 stock.json
}

// Load は設定を読み込みます。環境変数が最優先。
// 期待する名前: APP_ENV, HTTP_PORT, LINE_CHANNEL_ACCESS_TOKEN, LINE_ALLOWED_SOURCE_IDS など。
func Load() (*Config, error) {
	v := viper.New()

	// 任意の設定ファイル（.env / config.env）。無ければ黙って環境変数だけ使う
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "salon-inventory-webhook"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Line: LineConfig{
			ChannelAccessToken: getString(v, "LINE_CHANNEL_ACCESS_TOKEN", ""),
			ReplyEndpoint:      getString(v, "LINE_REPLY_ENDPOINT", "https://api.line.me/v2/bot/message/reply"),
			AllowedSourceIDs:   getString(v, "LINE_ALLOWED_SOURCE_IDS", ""),
			CommandPrefix:      getString(v, "BOT_COMMAND_PREFIX", ""),
			ReplyRatePerSecond: getFloat(v, "LINE_REPLY_RATE_PER_SEC", 10),
			ReplyBurst:         getInt(v, "LINE_REPLY_BURST", 5),
		},
		Data: DataConfig{
			ProductsPath: getString(v, "DATA_PRODUCTS_PATH", "./data/products.json"),
			StockPath:    getString(v, "DATA_STOCK_PATH", "./data/stock.json"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
