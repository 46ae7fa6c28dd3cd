package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "tienda-pos", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "tienda_pos", cfg.DB.DBName)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "pos", cfg.Redis.KeyPrefix)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.interna")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("REDIS_ADDR", "redis.interna:6380")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.interna", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "redis.interna:6380", cfg.Redis.Addr)
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

// No se inyecta un secreto débil por defecto: sin JWT_SECRET queda vacío.
func TestLoad_SinSecretoPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "p@ss w0rd", DBName: "tienda_pos", SSLMode: "disable"}
	dsn := c.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%20w0rd", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")

	// DATABASE_URL completo tiene prioridad sobre los campos sueltos.
	c.DatabaseURL = "postgres://u:p@otra:5432/db"
	assert.Equal(t, "postgres://u:p@otra:5432/db", c.ConnectionString())
}
