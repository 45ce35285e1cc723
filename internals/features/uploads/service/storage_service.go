// internals/features/uploads/service/storage_service.go
package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage persists already-encoded file bytes and returns a public URL per
// file. The backend is chosen once from the environment.
type Storage interface {
	SaveFile(entityType string, entityID uint, filename string, data []byte) (string, error)
}

// LocalStorage writes under baseDir/<entity_type>/<entity_id>/ and exposes
// files at publicBase/<same key>, served by the app's static handler.
type LocalStorage struct {
	BaseDir    string
	PublicBase string
}

func NewStorageFromEnv() Storage {
	baseDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if baseDir == "" {
		baseDir = "uploads"
	}
	publicBase := strings.TrimSpace(os.Getenv("UPLOAD_PUBLIC_BASE"))
	if publicBase == "" {
		publicBase = "/uploads"
	}
	return &LocalStorage{
		BaseDir:    baseDir,
		PublicBase: strings.TrimRight(publicBase, "/"),
	}
}

func (s *LocalStorage) SaveFile(entityType string, entityID uint, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.BaseDir, entityType, fmt.Sprintf("%d", entityID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := safeName(filename)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%d/%s", s.PublicBase, entityType, entityID, name), nil
}

// safeName keeps only the extension of the client-supplied name.
func safeName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}
