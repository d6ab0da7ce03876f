package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrNotImage = errors.New("file is not an image")

// imageExtensions lists the image types accepted for upload and the
// extension used when the object is stored.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
	"image/tiff": "tiff",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/heif": "heif",
	"image/avif": "avif",
}

// DetectImage sniffs the content type of data. The file name and any
// client supplied header are ignored.
func DetectImage(data []byte) (mimeType, ext string, err error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("%w: empty file", ErrNotImage)
	}

	mt := mimetype.Detect(data)
	mimeType = mt.String()
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", "", fmt.Errorf("%w: detected %s", ErrNotImage, mimeType)
	}

	return mimeType, ExtensionFor(mimeType), nil
}

// ExtensionFor returns the storage extension for an image MIME type.
func ExtensionFor(mimeType string) string {
	if ext, ok := imageExtensions[mimeType]; ok {
		return ext
	}
	if ext := mimetype.Lookup(mimeType); ext != nil && ext.Extension() != "" {
		return strings.TrimPrefix(ext.Extension(), ".")
	}
	return "img"
}

// FormatBytes renders a byte count the way validation messages show it.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d bytes", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 3; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGT"[exp])
}
