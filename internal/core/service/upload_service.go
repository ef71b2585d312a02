package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/foodmenu/menu-system/internal/core/domain"
)

// UploadService lands uploaded files in a local directory under a
// randomized stored name and hands back the public retrieval URL.
type UploadService struct {
	root    string
	baseURL string
	logger  zerolog.Logger
}

// NewUploadService creates the storage root if it does not exist yet.
// baseURL is the public origin the returned URLs are built from.
func NewUploadService(root, baseURL string, logger zerolog.Logger) (*UploadService, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root %s: %w", abs, err)
	}
	return &UploadService{
		root:    abs,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Store writes the uploaded bytes under <token>_<originalFilename>.
// Filenames carrying a parent-directory sequence are rejected before
// anything touches the filesystem. A stored-name collision overwrites;
// with 16 random bytes in the name that is not a practical concern.
func (s *UploadService) Store(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	storedName := randomToken() + "_" + originalFilename

	if strings.Contains(storedName, "..") {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidFilename, storedName)
	}

	target := filepath.Join(s.root, storedName)
	f, err := os.Create(target)
	if err != nil {
		s.logger.Error().Err(err).Str("file", storedName).Msg("upload create failed")
		return "", fmt.Errorf("%w: %s", domain.ErrStorageWrite, storedName)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		s.logger.Error().Err(err).Str("file", storedName).Msg("upload write failed")
		return "", fmt.Errorf("%w: %s", domain.ErrStorageWrite, storedName)
	}

	s.logger.Info().Str("file", storedName).Msg("file stored")
	return s.baseURL + "/uploads/" + storedName, nil
}

// randomToken returns 32 hex characters from a CSPRNG.
func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return fmt.Sprintf("%x", b)
}
