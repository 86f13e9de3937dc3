package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"aesvec/internal/util"
)

type Config struct {
	LogLevel    string
	Format      string
	Count       int
	IVHex       string
	Cases       string
	DatabaseURL string
	HTTPPort    string
	JWTSecret   string
	JWTTTL      time.Duration
}

// Load reads the environment. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	c := Config{
		LogLevel:    os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("AESVEC_FORMAT"),
		Count:       1,
		IVHex:       os.Getenv("AESVEC_IV"),
		Cases:       os.Getenv("AESVEC_CASES"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    os.Getenv("HTTP_PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      24 * time.Hour,
	}
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if s := os.Getenv("AESVEC_COUNT"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("AESVEC_COUNT must be a positive integer, got %q", s)
		}
		c.Count = n
	}
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		c.JWTTTL = d
	}
	if _, err := c.IV(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// IV decodes IVHex; nil when unset.
func (c Config) IV() ([]byte, error) {
	if strings.TrimSpace(c.IVHex) == "" {
		return nil, nil
	}
	iv, err := util.DecodeHex(c.IVHex)
	if err != nil {
		return nil, fmt.Errorf("iv: %w", err)
	}
	if len(iv) != 16 {
		return nil, fmt.Errorf("iv must be 16 bytes, got %d", len(iv))
	}
	return iv, nil
}
