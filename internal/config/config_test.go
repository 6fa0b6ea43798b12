package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "availability",
		Password: "secret",
		DBName:   "availability",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=availability password=secret dbname=availability sslmode=disable",
		cfg.DSN())
}

func TestDatabaseConfig_DSN_EnvOverride(t *testing.T) {
	cfg := DatabaseConfig{Host: "localhost", Port: 5432, DBName: "availability"}

	t.Setenv(EnvDatabaseDSN, "host=db.internal port=6432 user=svc dbname=availability sslmode=require")

	assert.Equal(t,
		"host=db.internal port=6432 user=svc dbname=availability sslmode=require",
		cfg.DSN())
}
