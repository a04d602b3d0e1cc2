package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"account-recommendation/internal/api/rest"
	"account-recommendation/internal/database"
	"account-recommendation/internal/logger"
	"account-recommendation/internal/services"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	events := logger.NewEventLogger(10)
	handlers := rest.NewHandlers(services.NewStubRecommendationService(zap.NewNop()), events, zap.NewNop())
	server := httptest.NewServer(rest.SetupRouter(handlers, events, nil, zap.NewNop()))
	t.Cleanup(server.Close)
	return server
}

func TestSmoke_Success(t *testing.T) {
	server := newStubServer(t)

	out, err := runCommand(t, "smoke", "--base-url", server.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "OK   "+server.URL+" [bs] 定期性貯金積金")
}

func TestSmoke_GeneratedSamples(t *testing.T) {
	server := newStubServer(t)

	out, err := runCommand(t, "smoke", "--base-url", server.URL, "--samples", "3", "--seed", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "[bs]")
	assert.Contains(t, out, "[pl]")
	assert.Contains(t, out, "[cf]")
	assert.NotContains(t, out, "FAIL")
}

func TestSmoke_UsesReplitURL(t *testing.T) {
	server := newStubServer(t)
	t.Setenv("REPLIT_URL", server.URL)

	out, err := runCommand(t, "smoke", "--account-name", "現金", "--file-type", "pl")

	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestSmoke_FailureReturnsError(t *testing.T) {
	server := httptest.NewServer(nil)
	url := server.URL
	server.Close()

	out, err := runCommand(t, "smoke", "--base-url", url)

	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "FAIL")
}

func TestSmoke_InvalidFileType(t *testing.T) {
	_, err := runCommand(t, "smoke", "--base-url", "http://127.0.0.1:1", "--file-type", "xx")
	assert.Error(t, err)
}

func TestCheckProvider_ReportsWithoutFailing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	out, err := runCommand(t, "check-provider", "--backend", "gemini-api")

	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "client_library")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "api_key")
	assert.Contains(t, out, "SKIP")
	assert.Contains(t, out, "client_init")
}

func TestCheckProvider_UnsupportedBackend(t *testing.T) {
	out, err := runCommand(t, "check-provider", "--backend", "openai")

	require.NoError(t, err)
	assert.Contains(t, out, "unsupported backend")
}

func TestMigrate_AppliesAndIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "app.db")

	db, err := database.Open(context.Background(), dbPath, zap.NewNop())
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE analysis_result (id INTEGER PRIMARY KEY, ja_code TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := runCommand(t, "migrate", "--database-url", "sqlite:///"+dbPath, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "[dry-run] analysis_result: added [formula, calculation, accounts_used]")

	out, err = runCommand(t, "migrate", "--database-url", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "analysis_result: added [formula, calculation, accounts_used], already present []")

	t.Setenv("DATABASE_URL", dbPath)
	out, err = runCommand(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "added [], already present [formula, calculation, accounts_used]")
}

func TestMigrate_MissingTableFails(t *testing.T) {
	_, err := runCommand(t, "migrate", "--database-url", filepath.Join(t.TempDir(), "empty.db"))
	assert.Error(t, err)
}

func TestMigrate_NoDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := runCommand(t, "migrate")
	assert.ErrorIs(t, err, database.ErrNoDatabaseURL)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check-provider", "--log-level", "loud"})

	assert.Error(t, cmd.Execute())
}
