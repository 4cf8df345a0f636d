// FILE: compat/compat_test.go
package compat

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Falcom4000/logF"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLogger(t *testing.T) (*logf.Logger, string) {
	t.Helper()
	dir := t.TempDir()
	logger, err := logf.NewBuilder().
		Directory(dir).
		Capacity(64).
		FileSizeBytes(1 << 20).
		Build()
	require.NoError(t, err)
	logger.Start()
	return logger, dir
}

func readLogFile(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	return string(content)
}

func TestFastHTTPLoggerDetectsLevel(t *testing.T) {
	logger, dir := createTestLogger(t)
	adapter := NewFastHTTPLogger(logger)

	adapter.Printf("an error occurred: %s", "boom")
	adapter.Printf("plain informational line")

	logger.Stop()
	content := readLogFile(t, dir)
	assert.Contains(t, content, "[ERROR]")
	assert.Contains(t, content, "boom")
	assert.Contains(t, content, "[INFO]")
}

func TestGnetLoggerLevels(t *testing.T) {
	logger, dir := createTestLogger(t)
	adapter := NewGnetLogger(logger)

	adapter.Infof("serving %s", "conn-1")
	adapter.Warnf("slow conn %d", 7)
	adapter.Errorf("dropped conn %d", 9)

	logger.Stop()
	content := readLogFile(t, dir)
	assert.Contains(t, content, "serving conn-1")
	assert.Contains(t, content, "[WARNING]")
	assert.Contains(t, content, "[ERROR]")
}

func TestFastHTTPLoggerSanitizesEmbeddedNewline(t *testing.T) {
	logger, dir := createTestLogger(t)
	adapter := NewFastHTTPLogger(logger)

	adapter.Printf("path=%s", "/a\n[ERROR] forged line")

	logger.Stop()
	content := readLogFile(t, dir)
	assert.NotContains(t, content, "\n[ERROR] forged line")
	assert.Contains(t, content, "<0a>[ERROR] forged line")
}

func TestGnetLoggerFatalInvokesHandler(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Stop()

	var called bool
	adapter := NewGnetLogger(logger, WithFatalHandler(func(string) {
		called = true
	}))

	adapter.Fatalf("unrecoverable: %d", 1)
	assert.True(t, called)

	time.Sleep(10 * time.Millisecond)
}

func TestFiberLoggerLevelsAndFormatting(t *testing.T) {
	logger, dir := createTestLogger(t)
	adapter := NewFiberLogger(logger)

	adapter.Info("listening on", 8080)
	adapter.Warnf("slow request %dms", 250)
	adapter.Errorw("request failed", "status", 500, "path", "/x")

	logger.Stop()
	content := readLogFile(t, dir)
	assert.Contains(t, content, "[INFO]")
	assert.Contains(t, content, "listening on")
	assert.Contains(t, content, "[WARNING]")
	assert.Contains(t, content, "slow request 250ms")
	assert.Contains(t, content, "[ERROR]")
	assert.Contains(t, content, "request failed")
}

func TestFiberLoggerFatalAndPanicInvokeHandlers(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Stop()

	var fatalCalled, panicCalled bool
	adapter := NewFiberLogger(logger,
		WithFiberFatalHandler(func(string) { fatalCalled = true }),
		WithFiberPanicHandler(func(string) { panicCalled = true }),
	)

	adapter.Fatal("giving up")
	adapter.Panic("unreachable state")
	assert.True(t, fatalCalled)
	assert.True(t, panicCalled)
}

func TestFiberLoggerWriteTrimsTrailingNewline(t *testing.T) {
	logger, dir := createTestLogger(t)
	adapter := NewFiberLogger(logger)

	n, err := adapter.Write([]byte("from writer\n"))
	require.NoError(t, err)
	assert.Equal(t, len("from writer\n"), n)

	logger.Stop()
	content := readLogFile(t, dir)
	assert.Contains(t, content, "from writer\n")
}

func TestCompatBuilderSharesOneLogger(t *testing.T) {
	dir := t.TempDir()
	cfg := logf.DefaultConfig()
	cfg.Directory = dir
	cfg.Capacity = 64
	cfg.FileSizeBytes = 1 << 20

	b := NewBuilder().WithConfig(cfg)

	gnetLogger, err := b.BuildGnet()
	require.NoError(t, err)
	fasthttpLogger, err := b.BuildFastHTTP()
	require.NoError(t, err)

	shared, err := b.GetLogger()
	require.NoError(t, err)
	defer shared.Stop()

	gnetLogger.Infof("from gnet")
	fasthttpLogger.Printf("from fasthttp")

	shared.Stop()
	content := readLogFile(t, dir)
	assert.Contains(t, content, "from gnet")
	assert.Contains(t, content, "from fasthttp")
}

func TestCompatBuilderRejectsNilLogger(t *testing.T) {
	_, err := NewBuilder().WithLogger(nil).GetLogger()
	assert.Error(t, err)
}
