package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croprecd/internal/config"
	"croprecd/internal/registry"
	"croprecd/internal/registry/registrytest"
)

func testCLI(env map[string]string) (*cli, *bytes.Buffer) {
	var out bytes.Buffer
	return &cli{stdout: &out, getenv: func(k string) string { return env[k] }}, &out
}

func run(t *testing.T, c *cli, args ...string) error {
	t.Helper()
	root := c.rootCmd()
	root.SetArgs(append(args, "--env-file", ""))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "croprecd.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("artifacts_dir: /from/file\napi_revision: 2\ncache_size: 10\n"), 0o644))

	c, _ := testCLI(map[string]string{"CROPRECD_ARTIFACTS_DIR": "/from/env", "CROPRECD_CACHE_SIZE": "20"})
	root := c.rootCmd()
	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	require.NoError(t, serve.ParseFlags([]string{"--config", cfgPath, "--cache-size", "30"}))

	cfg, err := c.resolve(serve.Flags())
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ArtifactsDir) // env beats file
	assert.Equal(t, 2, cfg.APIRevision)            // file beats default
	assert.Equal(t, 30, cfg.CacheSize)             // flag beats env
	assert.Equal(t, ":8000", cfg.Addr)
	require.NotNil(t, cfg.CORSEnabled)
	assert.True(t, *cfg.CORSEnabled)
}

func TestResolve_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CROPRECD_DOTENV_PROBE=seen\n"), 0o644))
	t.Setenv("CROPRECD_DOTENV_PROBE", "")
	os.Unsetenv("CROPRECD_DOTENV_PROBE")

	c := &cli{getenv: os.Getenv}
	flags := c.rootCmd().Flags()
	c.envFile = envPath
	_, err := c.resolve(flags)
	require.NoError(t, err)
	assert.Equal(t, "seen", os.Getenv("CROPRECD_DOTENV_PROBE"))

	c.envFile = filepath.Join(dir, "missing.env")
	_, err = c.resolve(flags)
	assert.NoError(t, err)
}

func TestResolve_BadConfigFile(t *testing.T) {
	c, _ := testCLI(nil)
	flags := c.rootCmd().Flags()
	c.configPath = filepath.Join(t.TempDir(), "nope.yaml")
	_, err := c.resolve(flags)
	assert.Error(t, err)
}

func TestResolve_RejectsUnknownRevision(t *testing.T) {
	c, _ := testCLI(map[string]string{"CROPRECD_API_REVISION": "3"})
	_, err := c.resolve(c.rootCmd().Flags())
	assert.ErrorContains(t, err, "api revision")
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	setupLogging(config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogging(config.Config{LogLevel: "off"}, &buf)
	assert.Equal(t, zerolog.Disabled, zerolog.GlobalLevel())

	setupLogging(config.Config{LogLevel: "nonsense"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestInspect_Loaded(t *testing.T) {
	dir := t.TempDir()
	registrytest.WriteArtifacts(t, dir, registry.RevisionSoil)

	c, out := testCLI(nil)
	require.NoError(t, run(t, c, "inspect", "--artifacts-dir", dir, "--api-revision", "2", "--log-level", "off"))

	var rep inspectReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.True(t, rep.Loaded)
	assert.Equal(t, 2, rep.APIRevision)
	require.NotNil(t, rep.Model)
	assert.Equal(t, "DecisionTreeClassifier", rep.Model.ModelType)
	require.NotNil(t, rep.SoilTypes)
	assert.Equal(t, 3, rep.SoilTypes.TotalSoilTypes)
	assert.Equal(t, 4, rep.Crops.TotalCrops)
}

func TestInspect_Unloaded(t *testing.T) {
	c, out := testCLI(nil)
	err := run(t, c, "inspect", "--artifacts-dir", t.TempDir(), "--log-level", "off")
	require.Error(t, err)

	var rep inspectReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.False(t, rep.Loaded)
	assert.Contains(t, rep.Error, "artifact not found")
	assert.Nil(t, rep.Model)
}

func TestServe_ServesAndShutsDown(t *testing.T) {
	dir := t.TempDir()
	registrytest.WriteArtifacts(t, dir, registry.RevisionBasic)
	cfg := config.Config{ArtifactsDir: dir, LogLevel: "off"}.Merge(config.Defaults())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, ln) }()

	base := "http://" + ln.Addr().String()
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(base + "/readyz")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
