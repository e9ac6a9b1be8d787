package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/schema"
)

const testConfig = `base:
  name: errkit-test
  environment: development
logging:
  level: error
  format: json
server:
  port: 0
  docs_path: /docs.json
errors:
  custom:
    - name: QuotaExceeded
      status_code: 429
      code: ERR_QUOTA
      message: Quota of %s exceeded
      description: The account ran out of quota
`

func init() {
	gin.SetMode(gin.TestMode)
}

// writeConfig writes contents to a temporary config file.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagJSON = false
	flagConfig = ""
	flagDocsMethod = "GET"
	flagDocsPath = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogTable(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--config", writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "STATUS") {
		t.Fatalf("expected a header row, got %q", lines[0])
	}
	if len(lines) != apperrors.Standard().Len()+2 {
		t.Fatalf("expected %d rows, got %d", apperrors.Standard().Len()+2, len(lines))
	}
	last := strings.Fields(lines[len(lines)-1])
	if last[0] != "429" || last[1] != "QuotaExceeded" || last[2] != "ERR_QUOTA" {
		t.Fatalf("expected the custom kind last, got %v", last)
	}
}

func TestCatalogJSON(t *testing.T) {
	out, err := executeCommand(t, "catalog", "--json", "--config", writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entries[0]["name"] != "BadRequestError" || entries[0]["statusCode"] != float64(400) {
		t.Fatalf("unexpected first entry %v", entries[0])
	}
}

func TestDocsFragments(t *testing.T) {
	out, err := executeCommand(t, "docs", "--config", writeConfig(t, testConfig), "QuotaExceeded", "TooManyRequestsError")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}

	var fragments map[string]struct {
		Ref       string                     `json:"$ref"`
		Examples  map[string]json.RawMessage `json:"x-examples"`
		Described string                     `json:"description"`
	}
	if err := json.Unmarshal([]byte(out), &fragments); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	f, ok := fragments["429"]
	if !ok || len(fragments) != 1 {
		t.Fatalf("expected a single 429 fragment, got %v", fragments)
	}
	if f.Ref != schema.HTTPErrorName || f.Described != "Too Many Requests" || len(f.Examples) != 2 {
		t.Fatalf("unexpected fragment %+v", f)
	}
}

func TestDocsOpenAPI(t *testing.T) {
	out, err := executeCommand(t, "docs", "--path", "/users/:id", "--method", "delete", "NotFoundError")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, ok := doc.Paths["/users/{id}"]["delete"]; !ok {
		t.Fatalf("expected DELETE /users/{id}, got %v", doc.Paths)
	}
}

func TestDocsUnknownKind(t *testing.T) {
	_, err := executeCommand(t, "docs", "NoSuchKind")
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := getExitCode(err); code != 4 {
		t.Fatalf("expected exit code 4, got %d", code)
	}
}

func TestExecute_ReturnsErrorForExitCode(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"success", []string{"version"}, 0, "errkit version "},
		{"unknown kind", []string{"docs", "NoSuchKind"}, 4, "Error: "},
		{"unknown command", []string{"no-such-command"}, 1, "Error: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagJSON = false
			flagConfig = ""
			flagDocsMethod = "GET"
			flagDocsPath = ""

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			err := Execute()
			if code := ExitCode(err); code != tt.wantCode {
				t.Fatalf("expected exit code %d, got %d (err %v)", tt.wantCode, code, err)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("expected output to contain %q, got %q", tt.wantOut, out.String())
			}
		})
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, "errors:\n  custom:\n    - name: Broken\n      status_code: 99\n      code: ERR_X\n")
	if _, err := executeCommand(t, "catalog", "--config", cfg); err == nil {
		t.Fatal("expected an invalid status code to be rejected")
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "errkit version ") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = executeCommand(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil || info["version"] == nil {
		t.Fatalf("unexpected JSON output %q: %v", out, err)
	}
}

func TestNewServer(t *testing.T) {
	flagConfig = writeConfig(t, testConfig)
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Base.Name != "errkit-test" || cfg.Server.DocsPath != "/docs.json" {
		t.Fatalf("config not loaded: %+v", cfg)
	}

	srv, err := newServer(cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}

	get := func(target string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
		return rr
	}

	rr := get("/raise/QuotaExceeded")
	if rr.Code != http.StatusTooManyRequests || !strings.Contains(rr.Body.String(), `"code":"ERR_QUOTA"`) {
		t.Fatalf("expected the configured kind, got %d %s", rr.Code, rr.Body.String())
	}
	if rr = get("/docs.json"); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "/users/{id}") {
		t.Fatalf("expected the docs document, got %d", rr.Code)
	}
	if rr = get("/errors"); !strings.Contains(rr.Body.String(), "UserNotFound") {
		t.Fatalf("expected demo kinds in the catalog listing, got %s", rr.Body.String())
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ERRKIT_SERVER_PORT", "9191")
	flagConfig = writeConfig(t, testConfig)
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Fatalf("expected port 9191 from the environment, got %d", cfg.Server.Port)
	}
}
