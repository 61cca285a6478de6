package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpilot-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "stockpilot", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, config.StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "./data/stockpilot.json", cfg.Storage.DataFile)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATA_FILE", "/tmp/otro.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/otro.json", cfg.Storage.DataFile)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	_, err := config.Load()
	assert.Error(t, err, "un driver no soportado debe rechazarse al arrancar")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/w:rd",
		DBName: "stockpilot", SSLMode: "disable",
	}

	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fw%3Ard", "la contraseña viaja con URL encoding")
	assert.Contains(t, dsn, "/stockpilot?sslmode=disable")

	db.DatabaseURL = "postgres://uri-completa"
	assert.Equal(t, "postgres://uri-completa", db.ConnectionString(), "DATABASE_URL manda sobre los campos sueltos")
}
