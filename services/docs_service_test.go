package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocumentPath(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 890000000, time.UTC)

	path := BuildDocumentPath(42, "Procuracao Maria Silva.pdf", now)
	assert.Equal(t, "42/2025-03-04T05-06-07-890Z-Procuracao_Maria_Silva.pdf", path)

	// No colons or dots survive in the timestamp segment
	stamp := strings.Split(path, "/")[1]
	prefix := strings.TrimSuffix(stamp, "-Procuracao_Maria_Silva.pdf")
	assert.NotContains(t, prefix, ":")
	assert.NotContains(t, prefix, ".")
}

func TestUploadProcuracaoRejectsNonPDF(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	_, err := UploadProcuracao(context.Background(), store, 1, "procuracao.docx", strings.NewReader("x"), 1)
	assert.True(t, IsKind(err, ErrValidation))

	_, err = UploadProcuracao(context.Background(), store, 1, "", strings.NewReader("x"), 1)
	assert.True(t, IsKind(err, ErrValidation))
}

func TestUploadProcuracaoStoresFile(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir)

	content := "%PDF-1.4 fake"
	path, err := UploadProcuracao(context.Background(), store, 42, "Procuracao Maria.pdf", strings.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "42/"))
	assert.True(t, strings.HasSuffix(path, "-Procuracao_Maria.pdf"))

	stored, readErr := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, readErr)
	assert.Equal(t, content, string(stored))
}

func TestSignedDocumentURLLocal(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	url, err := SignedDocumentURL(context.Background(), store, "42/doc.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, "/files/42/doc.pdf", url)
}

func TestLocalStorageRoundTrip(t *testing.T) {
	store := NewLocalStorage(t.TempDir())
	ctx := context.Background()

	_, err := store.UploadReader(ctx, strings.NewReader("conteudo"), "7/a.pdf", "application/pdf", 8)
	require.NoError(t, err)

	reader, contentType, err := store.Get(ctx, "7/a.pdf")
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "application/pdf", contentType)

	require.NoError(t, store.Delete(ctx, "7/a.pdf"))
	_, _, err = store.Get(ctx, "7/a.pdf")
	assert.Error(t, err)
}
