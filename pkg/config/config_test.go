package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "activos-api", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestFromViper_PuertoInvalidoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "no-es-numero")
	v.Set("DB_PORT", "6543")

	cfg := fromViper(v)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestDBConfig_DSNCodificaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "activos", SSLMode: "disable"}
	dsn := c.DSN()

	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd")
	assert.Contains(t, dsn, "db:5432/activos?sslmode=disable")

	c.DatabaseURL = "postgres://u:p@remote:5432/x"
	assert.Equal(t, "postgres://u:p@remote:5432/x", c.ConnectionString())
}
