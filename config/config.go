package config

import (
	"os"
	"strconv"
)

// Config holds every environment-sourced setting the server needs.
type Config struct {
	Port        string
	Env         string
	DBPath      string
	FrontendURL string

	JWTSecret     string
	JWTExpireDays int

	AdminUser string
	AdminPass string

	MercadoPagoToken  string
	MercadoPagoAPIURL string
	PixKey            string
	PixDebug          bool

	RateLimitWindowMin int
	RateLimitMax       int

	BackupDir string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("APP_ENV", "dev"),
		DBPath:      getEnv("DB_PATH", "gamestore.db"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret:     getEnv("JWT_SECRET", "chave_secreta_padrao"),
		JWTExpireDays: getEnvInt("JWT_EXPIRE_DAYS", 7),

		AdminUser: getEnv("ADMIN_USER", "dev_admin_user"),
		AdminPass: os.Getenv("ADMIN_PASS"),

		MercadoPagoToken:  os.Getenv("MERCADO_PAGO_ACCESS_TOKEN"),
		MercadoPagoAPIURL: getEnv("MERCADO_PAGO_API_URL", "https://api.mercadopago.com"),
		PixKey:            getEnv("PIX_KEY", "03731228297"),
		PixDebug:          getEnv("PIX_DEBUG", "false") == "true",

		RateLimitWindowMin: getEnvInt("RATE_LIMIT_WINDOW_MIN", 15),
		RateLimitMax:       getEnvInt("RATE_LIMIT_MAX", 100),

		BackupDir: getEnv("BACKUP_DIR", "backup"),
	}
}
