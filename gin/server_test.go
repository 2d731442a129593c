package gin_test

import (
	"net/http"
	"testing"

	fpgin "github.com/fwojciec/faleproxy/gin"
	"github.com/fwojciec/faleproxy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	var cfg fpgin.Config
	cfg.SetDefaults()

	assert.Equal(t, fpgin.DefaultAddr, cfg.Addr)
	assert.Equal(t, fpgin.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, fpgin.DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, fpgin.DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestServer_OpenClose(t *testing.T) {
	t.Parallel()

	s := fpgin.NewServer(fpgin.Config{Addr: "127.0.0.1:0"}, discardLogger())
	s.ProxyService = &mock.ProxyService{}

	require.NoError(t, s.Open())

	resp, err := http.Get("http://" + s.Addr() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Close())
}
