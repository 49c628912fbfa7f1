package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func TestRun_DevuelveErrorSinBaseDeDatos(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://postgres@127.0.0.1:1/catalogo?sslmode=disable&connect_timeout=1")
	cfg, err := config.Load()
	require.NoError(t, err)

	err = run(cfg, logger.Nop())
	require.Error(t, err, "run devuelve el error en vez de terminar el proceso")
	assert.Contains(t, err.Error(), "conexión a PostgreSQL")
}
