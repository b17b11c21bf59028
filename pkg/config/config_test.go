package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/papeleria-pos/pkg/config"
)

func TestDBConfig_DSN_EscapaCaracteresEspeciales(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word#1",
		DBName:   "papeleria",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://postgres:")
	assert.Contains(t, dsn, "@localhost:5432/papeleria")
	assert.Contains(t, dsn, "sslmode=disable")
	// La contraseña no viaja cruda con sus caracteres reservados
	assert.NotContains(t, dsn, "p@ss/word#1")
}

func TestDBConfig_ConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/x?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@db:5432/x?sslmode=require", cfg.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	cfg := config.HTTPConfig{Host: "0.0.0.0", Port: 8000}
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}
