package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"croprecd/internal/httpapi"
	"croprecd/internal/predict"
	"croprecd/internal/registry"
	"croprecd/internal/registry/registrytest"
)

// createArtifactsDir writes the fixture artifacts for rev into a temp dir.
func createArtifactsDir(t *testing.T, rev registry.Revision) string {
	t.Helper()
	dir := t.TempDir()
	registrytest.WriteArtifacts(t, dir, rev)
	return dir
}

// newServerForDir loads artifacts from dir the way the binary does and
// serves them over a real listener.
func newServerForDir(t *testing.T, dir string, rev registry.Revision, cfg predict.Config) (*httptest.Server, *predict.Service) {
	t.Helper()
	reg := registry.Load(registry.Options{Dir: dir, Revision: rev})
	svc := predict.New(reg, cfg)
	srv := httptest.NewServer(httpapi.NewMux(svc))
	t.Cleanup(srv.Close)
	return srv, svc
}

func overwrite(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func httpPostJSON(t *testing.T, url string, payload string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewBufferString(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}
