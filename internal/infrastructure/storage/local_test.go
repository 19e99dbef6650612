package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/internal/infrastructure/storage"
	"github.com/jnasution/hris-api/pkg/logger"
)

func newStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	store, err := storage.NewLocalStore(t.TempDir(), log)
	require.NoError(t, err)
	return store
}

// fileHeader membangun *multipart.FileHeader lewat request multipart sungguhan.
func fileHeader(t *testing.T, filename, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="foto"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["foto"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSave_GambarValid(t *testing.T) {
	store := newStore(t)
	fh := fileHeader(t, "profil.jpg", "image/jpeg", []byte("isi-gambar"))

	publicPath, err := store.Save(fh, "users")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(publicPath, "/uploads/users/"),
		"path publik harus di bawah /uploads/<subdir>/")
	assert.True(t, strings.HasSuffix(publicPath, ".jpg"), "ekstensi asli dipertahankan")

	rel := strings.TrimPrefix(publicPath, "/uploads/")
	data, err := os.ReadFile(filepath.Join(store.Root(), rel))
	require.NoError(t, err)
	assert.Equal(t, []byte("isi-gambar"), data)
}

func TestSave_BukanGambar_Ditolak(t *testing.T) {
	store := newStore(t)
	fh := fileHeader(t, "dokumen.pdf", "application/pdf", []byte("%PDF-1.4"))

	_, err := store.Save(fh, "users")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Hanya file gambar yang diperbolehkan")
}

func TestSave_TerlaluBesar_Ditolak(t *testing.T) {
	store := newStore(t)
	fh := fileHeader(t, "besar.png", "image/png", bytes.Repeat([]byte("x"), (2<<20)+1))

	_, err := store.Save(fh, "employees")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "2MB")
}

func TestRemove_FileAda(t *testing.T) {
	store := newStore(t)
	fh := fileHeader(t, "hapus.png", "image/png", []byte("data"))

	publicPath, err := store.Save(fh, "users")
	require.NoError(t, err)

	require.NoError(t, store.Remove(publicPath))

	rel := strings.TrimPrefix(publicPath, "/uploads/")
	_, err = os.Stat(filepath.Join(store.Root(), rel))
	assert.True(t, os.IsNotExist(err))
}

func TestRemove_FileSudahTidakAda_BukanError(t *testing.T) {
	store := newStore(t)
	assert.NoError(t, store.Remove("/uploads/users/tidak-ada.png"),
		"penghapusan foto best effort: file hilang bukan error")
}

func TestRemove_DiLuarDirektoriUpload_Error(t *testing.T) {
	store := newStore(t)
	assert.Error(t, store.Remove("/etc/passwd"))
}

func TestRemove_PathTraversal_Ditolak(t *testing.T) {
	base := t.TempDir()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	store, err := storage.NewLocalStore(filepath.Join(base, "uploads"), log)
	require.NoError(t, err)

	// File di luar root yang tidak boleh bisa dihapus lewat "..".
	target := filepath.Join(base, "korban.txt")
	require.NoError(t, os.WriteFile(target, []byte("jangan dihapus"), 0o644))

	assert.Error(t, store.Remove("/uploads/../korban.txt"))
	assert.Error(t, store.Remove("/uploads/users/../../korban.txt"))

	_, statErr := os.Stat(target)
	assert.NoError(t, statErr, "file di luar root harus tetap utuh")
}
