package imagegen_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Postcraft/internal/pkg/imagegen"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Professional corporate photography poster, wedding shoot, high resolution, realistic, cinematic lighting",
		imagegen.BuildPrompt("wedding shoot"))
}

func TestGeneratorEmbedsPromptInPath(t *testing.T) {
	t.Parallel()

	body := pngBytes(t, 64, 32)
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	gen := imagegen.NewGenerator(srv.URL+"/", 0, nil)
	img, err := gen.Generate(context.Background(), "studio portrait")
	require.NoError(t, err)

	assert.Equal(t, "/prompt/"+imagegen.BuildPrompt("studio portrait"), gotPath)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestGeneratorRejectsErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := imagegen.NewGenerator(srv.URL, 0, nil).Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSaveUploadAndDecode(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "uploads")
	path, err := imagegen.SaveUpload(dir, fileHeader(t, "../../photo.png", pngBytes(t, 10, 20)))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "photo.png"), path)

	img, err := imagegen.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestSaveUploadDotDotNameStaysInDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "uploads")
	path, err := imagegen.SaveUpload(dir, fileHeader(t, "..", pngBytes(t, 4, 4)))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "upload_"))
	assert.FileExists(t, path)
}

func TestDecodeFileRejectsNonImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o600))

	_, err := imagegen.DecodeFile(path)
	assert.True(t, errors.Is(err, imagegen.ErrNotImage))
}
