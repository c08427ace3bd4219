package storage

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
)

// uploadHeader builds a real multipart file header the way Fiber hands
// one to the controller.
func uploadHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="images"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["images"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveImageWritesUnderStaticRoot(t *testing.T) {
	root := t.TempDir()
	file := uploadHeader(t, "kitchen.jpg", "image/jpeg", []byte("fake jpeg bytes"))

	url, err := SaveImage(file, root, 17)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/images/properties/17_"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	data, err := os.ReadFile(filepath.Join(root, strings.TrimPrefix(url, "/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake jpeg bytes"), data)
}

func TestSaveImageNamesAreUniquePerUpload(t *testing.T) {
	root := t.TempDir()

	first, err := SaveImage(uploadHeader(t, "a.png", "image/png", []byte("one")), root, 3)
	require.NoError(t, err)
	second, err := SaveImage(uploadHeader(t, "a.png", "image/png", []byte("two")), root, 3)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveImageRejectsBadContentType(t *testing.T) {
	root := t.TempDir()
	file := uploadHeader(t, "script.gif", "image/gif", []byte("gif"))

	_, err := SaveImage(file, root, 1)
	assert.ErrorContains(t, err, "invalid file type")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveImageRejectsOversizedFile(t *testing.T) {
	root := t.TempDir()
	file := uploadHeader(t, "huge.jpg", "image/jpeg", bytes.Repeat([]byte("x"), MaxFileSize+1))

	_, err := SaveImage(file, root, 1)
	assert.ErrorContains(t, err, "file size too large")
}

func TestDeleteImageRemovesFile(t *testing.T) {
	root := t.TempDir()

	url, err := SaveImage(uploadHeader(t, "b.jpg", "image/jpeg", []byte("bytes")), root, 5)
	require.NoError(t, err)

	path := filepath.Join(root, strings.TrimPrefix(url, "/"))
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, DeleteImage(root, url))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteImageMissingFileIsNotAnError(t *testing.T) {
	root := t.TempDir()

	assert.NoError(t, DeleteImage(root, "/images/properties/9_gone.jpg"))
}

func TestDeleteImageIgnoresForeignPaths(t *testing.T) {
	root := t.TempDir()

	outside := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	assert.NoError(t, DeleteImage(root, "/keep.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
