package media

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidDataURL = errors.New("invalid data url")

// IsDataURL reports whether s is an inline data: URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURL decodes a data: URL such as the ones returned by the image
// model. Both base64 and percent-encoded payloads are supported.
func ParseDataURL(s string) (mimeType string, data []byte, err error) {
	if !IsDataURL(s) {
		return "", nil, ErrInvalidDataURL
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	params := strings.Split(header, ";")
	mimeType = params[0]
	if mimeType == "" {
		mimeType = "text/plain"
	}
	isBase64 := false
	for _, p := range params[1:] {
		if p == "base64" {
			isBase64 = true
		}
	}

	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// some encoders drop the padding
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return "", nil, errors.Join(ErrInvalidDataURL, err)
		}
		return mimeType, data, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidDataURL, err)
	}
	return mimeType, []byte(decoded), nil
}
