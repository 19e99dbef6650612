// Package storage menyimpan file unggahan foto di filesystem lokal dan
// memetakannya ke path publik /uploads/... yang disajikan server.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/pkg/logger"
)

// maxUploadSize batas ukuran foto, sama dengan batas lama 2 MiB.
const maxUploadSize = 2 << 20

const publicPrefix = "/uploads/"

// LocalStore menyimpan unggahan di bawah satu direktori root.
type LocalStore struct {
	root string
	log  *logger.Logger
}

// NewLocalStore memastikan direktori root ada.
func NewLocalStore(root string, log *logger.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("buat direktori upload: %w", err)
	}
	return &LocalStore{root: root, log: log}, nil
}

// Root direktori fisik unggahan, dipakai untuk serving statis.
func (s *LocalStore) Root() string { return s.root }

// Save memvalidasi dan menulis file, mengembalikan path publik
// "/uploads/<subdir>/<nama>". Hanya gambar yang diterima.
func (s *LocalStore) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("%w: Ukuran file maksimal 2MB", domain.ErrInvalidInput)
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: Hanya file gambar yang diperbolehkan", domain.ErrInvalidInput)
	}

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("buat subdirektori upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.NewString() + ext

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("buka file unggahan: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("tulis file unggahan: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("salin file unggahan: %w", err)
	}

	return publicPrefix + subdir + "/" + name, nil
}

// Remove menghapus file berdasarkan path publiknya. File yang sudah tidak
// ada bukan error; penghapusan foto bersifat best effort.
//
// Path publik berasal dari data tersimpan yang bisa diisi klien, jadi hasil
// join diverifikasi masih berada di bawah root sebelum dihapus.
func (s *LocalStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, publicPrefix) {
		return fmt.Errorf("path di luar direktori upload: %s", publicPath)
	}
	rel := strings.TrimPrefix(publicPath, publicPrefix)
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	inside, err := filepath.Rel(s.root, full)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path di luar direktori upload: %s", publicPath)
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("hapus file: %w", err)
	}
	return nil
}
