package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["photo"][0]
}

func TestLocalStorage_SaveFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	t.Run("writes the file and returns its URL", func(t *testing.T) {
		url, err := storage.SaveFile(uploadedFile(t, "portrait.png", "png bytes"), "2024-0001_abcd1234.png")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/2024-0001_abcd1234.png", url)

		content, err := os.ReadFile(filepath.Join(dir, "2024-0001_abcd1234.png"))
		require.NoError(t, err)
		assert.Equal(t, "png bytes", string(content))
	})

	t.Run("path segments in the name are stripped", func(t *testing.T) {
		url, err := storage.SaveFile(uploadedFile(t, "x.png", "data"), "../../etc/passwd.png")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/passwd.png", url)

		_, err = os.Stat(filepath.Join(dir, "passwd.png"))
		assert.NoError(t, err)
	})

	t.Run("nil header is an error", func(t *testing.T) {
		_, err := storage.SaveFile(nil, "x.png")
		assert.Error(t, err)
	})
}

func TestLocalStorage_DeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	t.Run("removes a stored file", func(t *testing.T) {
		url, err := storage.SaveFile(uploadedFile(t, "x.png", "data"), "victim.png")
		require.NoError(t, err)

		require.NoError(t, storage.DeleteFile(url))
		_, err = os.Stat(filepath.Join(dir, "victim.png"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("deleting a missing file is not an error", func(t *testing.T) {
		assert.NoError(t, storage.DeleteFile("http://localhost:8080/uploads/never-existed.png"))
	})

	t.Run("empty URL is a no-op", func(t *testing.T) {
		assert.NoError(t, storage.DeleteFile(""))
	})
}
