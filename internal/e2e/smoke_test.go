package e2e

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/expert/general/chat", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"response":"Tim Berners-Lee a inventé le Web.","session_id":"srv-general-1"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	stdout, stderr, err := runWA(t, binaryPath, home, server.URL, "experts", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Wiki (general)")

	stdout, stderr, err = runWA(t, binaryPath, home, server.URL, "ask", "general", "--no-progress", "Qui a inventé Internet ?")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "Tim Berners-Lee a inventé le Web.\n", stdout)

	stdout, stderr, err = runWA(t, binaryPath, home, server.URL, "session", "show", "general")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "srv-general-1")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "wa-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wa")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build wa binary: %s", string(output))
	return binaryPath
}

func runWA(t *testing.T, binaryPath, home, apiURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "WIKIASK_API_URL="+apiURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
