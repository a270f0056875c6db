package imagegen

import (
	"Postcraft/internal/pkg/consts"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

var ErrNotImage = errors.New("file is not an image")

// SaveUpload 以原始文件名保存上传文件，返回本地路径
func SaveUpload(dir string, fh *multipart.FileHeader) (string, error) {
	name := uploadName(fh.Filename)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload dir")
	}

	src, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload")
	}
	defer func() { _ = src.Close() }()

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer func() { _ = dst.Close() }()

	if _, err = io.Copy(dst, src); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}
	return path, nil
}

// uploadName 文件名不可用时改用随机名，保证落在 dir 内
func uploadName(filename string) string {
	name := filepath.Base(filename)
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return consts.UploadPrefix + uuid.NewString()
	}
	return name
}

// DecodeFile 先按文件头嗅探类型，非图片直接拒绝
func DecodeFile(path string) (image.Image, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect file type")
	}
	if !strings.HasPrefix(mime.String(), consts.MimePrefixImage) {
		return nil, ErrNotImage
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}
	return img, nil
}
