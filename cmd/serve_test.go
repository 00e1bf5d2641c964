package cmd

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thanvi-nagalla/portfolio/internal/config"
)

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testConfig(addr string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Server.Mode = "test"
	cfg.Server.Addr = addr
	return cfg
}

func TestRunServerShutsDownOnCancel(t *testing.T) {
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- runServer(ctx, testConfig(addr))
	}()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServerListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	err = runServer(context.Background(), testConfig(l.Addr().String()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "listening on")
}

func TestServeCommandAddrOverride(t *testing.T) {
	defer func() {
		serveAddr = ""
		cfgFile = config.DefaultPath
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rootCmd.SetArgs([]string{
		"serve",
		"--config", filepath.Join(t.TempDir(), "none.yml"),
		"--addr", "127.0.0.1:0",
	})
	require.NoError(t, rootCmd.ExecuteContext(ctx))
	require.Equal(t, "127.0.0.1:0", serveAddr)
}
