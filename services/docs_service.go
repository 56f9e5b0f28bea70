package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// DefaultSignedURLTTL is the lifetime of download links for the private docs
// bucket
const DefaultSignedURLTTL = 10 * time.Minute

var whitespaceRe = regexp.MustCompile(`\s+`)

// BuildDocumentPath builds the storage path for a process document:
// {processId}/{timestamp}-{sanitizedFilename}, where the timestamp is RFC3339
// UTC with ':' and '.' replaced by '-' and filename whitespace collapsed to '_'.
func BuildDocumentPath(processID uint, filename string, now time.Time) string {
	safe := whitespaceRe.ReplaceAllString(filename, "_")
	stamp := strings.NewReplacer(":", "-", ".", "-").
		Replace(now.UTC().Format("2006-01-02T15:04:05.000Z"))
	return fmt.Sprintf("%d/%s-%s", processID, stamp, safe)
}

// UploadProcuracao stores a power-of-attorney PDF in the docs bucket and
// returns the storage path to be saved on process_participants.
// Only PDF files are accepted.
func UploadProcuracao(ctx context.Context, store StorageProvider, processID uint, filename string, reader io.Reader, size int64) (string, error) {
	if filename == "" {
		return "", NewValidationError("Arquivo não selecionado.")
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return "", NewValidationError("A procuração deve ser um arquivo PDF.")
	}

	path := BuildDocumentPath(processID, filename, time.Now())

	result, err := store.UploadReader(ctx, reader, path, "application/pdf", size)
	if err != nil {
		return "", &ServiceError{
			Kind:    ErrStorage,
			Message: "Erro de armazenamento de arquivos.",
			Err:     err,
		}
	}
	return result.Key, nil
}

// SignedDocumentURL generates a temporary download URL for a stored document.
// A zero ttl falls back to DefaultSignedURLTTL.
func SignedDocumentURL(ctx context.Context, store StorageProvider, path string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}

	url, err := store.GetSignedURL(ctx, path, ttl)
	if err != nil {
		return "", &ServiceError{
			Kind:    ErrStorage,
			Message: "Erro de armazenamento de arquivos.",
			Err:     err,
		}
	}
	return url, nil
}
