// Package config 环境变量配置，支持 .env 本地覆盖
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		Port:          getenv("PORT", "8080"),
		MySQLDSN:      getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/saut_review?charset=utf8mb4&parseTime=True"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),
		AccessSecret:  getenv("JWT_ACCESS_SECRET", ""),
		RefreshSecret: getenv("JWT_REFRESH_SECRET", ""),
		SMTPHost:      getenv("SMTP_HOST", "smtp.example.com"),
		SMTPPort:      getenvInt("SMTP_PORT", 587),
		SMTPUsername:  getenv("SMTP_USERNAME", "no-reply@example.com"),
		SMTPPassword:  getenv("SMTP_PASSWORD", ""),
		SMTPFrom:      getenv("SMTP_FROM", "Saut Al-Qur'an <no-reply@example.com>"),
		KafkaBrokers:  strings.Split(getenv("KAFKA_BROKERS", "127.0.0.1:9092"), ","),
		KafkaTopic:    getenv("KAFKA_TOPIC", "saut.review.events"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
