package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// LocalStore writes images to a directory on disk and serves them under
// baseURL. A 200px JPEG thumbnail is written next to each original.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Save(filename string, data []byte, folder string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	if thumb, err := generateThumbnail(data); err != nil {
		log.WithError(err).WithField("file", name).Warn("could not generate thumbnail")
	} else {
		thumbDir := filepath.Join(dir, "thumbs")
		if err := os.MkdirAll(thumbDir, 0o755); err == nil {
			if err := os.WriteFile(filepath.Join(thumbDir, name), thumb, 0o644); err != nil {
				log.WithError(err).WithField("file", name).Warn("could not write thumbnail")
			}
		}
	}

	return s.baseURL + "/" + folder + "/" + name, nil
}

func generateThumbnail(originalData []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(originalData))
	if err != nil {
		return nil, err
	}

	thumbnail := imaging.Resize(img, 200, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
