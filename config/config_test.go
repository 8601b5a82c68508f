package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("JWT_TTL", "")

	cfg := Load()

	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "x-auth-token", cfg.AuthHeader)
	assert.Equal(t, 100*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "5000", cfg.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEARCH_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.SearchEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("REDIS_DB", "one")
	t.Setenv("MAIL_SEND_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.MailSendEnabled)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:1/d?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test, ,http://b.test "}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Empty(t, (&Config{}).CORSOrigins())
}

func TestTrustedProxyList(t *testing.T) {
	cfg := &Config{TrustedProxies: "10.0.0.0/8, 172.16.0.1"}
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.TrustedProxyList())
	assert.Nil(t, (&Config{TrustedProxies: " , "}).TrustedProxyList())
}
