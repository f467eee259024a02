package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveKeepsExtensionAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "/public/uploads", 0)

	url, err := store.Save(fileHeader(t, "photo.PNG", []byte("fake image bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/public/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is kept and lowercased: %s", url)

	name := strings.TrimPrefix(url, "/public/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := New(t.TempDir(), "/public/uploads", 4)

	_, err := store.Save(fileHeader(t, "big.jpg", []byte("more than four bytes")))
	assert.Error(t, err)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := New(t.TempDir(), "/public/uploads", 0)

	a, err := store.Save(fileHeader(t, "a.jpg", []byte("a")))
	require.NoError(t, err)
	b, err := store.Save(fileHeader(t, "a.jpg", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, "/public/uploads", 0)

	url, err := store.Save(fileHeader(t, "gone.jpg", []byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	name := strings.TrimPrefix(url, "/public/uploads/")
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))

	// Unknown and out-of-store URLs are ignored.
	assert.NoError(t, store.Remove("/public/uploads/missing.jpg"))
	assert.NoError(t, store.Remove("/etc/passwd"))
	assert.NoError(t, store.Remove("/public/uploads/../secret"))
}
