package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	required := map[string]string{
		"HOST_IP":    "127.0.0.1",
		"REST_PORT":  "8080",
		"DB_HOST":    "mongo",
		"DB_PORT":    "27017",
		"DB_USER":    "maze",
		"DB_PASS":    "secret",
		"DB_NAME":    "vinom",
		"REDIS_ADDR": "redis:6379",
		"JWT_SECRET": "jwt-secret",
		"JWT_ISSUER": "vinom-maze",
	}
	for k, v := range required {
		t.Setenv(k, v)
	}
	t.Setenv("MAZE_DEFAULT_ROWS", "12")

	cfg := Load()

	assert.Equal(t, cfg, Envs)
	assert.Equal(t, 8080, cfg.RESTPort)
	assert.Equal(t, 27017, cfg.DBPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 3600, cfg.RunTTLSeconds)
	assert.Equal(t, 12, cfg.MazeDefaultRows)
	assert.Equal(t, 40, cfg.MazeDefaultCols)
}
