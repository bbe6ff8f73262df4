package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStorage_SaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080")
	assert.NoError(t, err)

	name, err := s.Save(multipartFile(t, "shirt.png", []byte("png-bytes")))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-shirt.png"), "got %q", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestLocalStorage_PublicURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080/")
	assert.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/uploads/123-a.png", s.PublicURL("123-a.png"))
}

func TestLocalStorage_SaveSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080")
	assert.NoError(t, err)

	name, err := s.Save(multipartFile(t, "my photo (1).png", []byte("x")))
	assert.NoError(t, err)
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")

	//保存先ディレクトリ内に収まっていること
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestLocalStorage_SaveRejectsPathTraversalNames(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080")
	assert.NoError(t, err)

	name, err := s.Save(multipartFile(t, "../../evil.png", []byte("x")))
	assert.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")

	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}
