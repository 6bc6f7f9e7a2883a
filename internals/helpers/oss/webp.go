// file: internals/helpers/oss/webp.go
package oss

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	imageMaxW   = 1600
	imageMaxH   = 1600
	webpQuality = 80
)

// NormalizeImage re-encodes JPEG/PNG payloads to bounded WebP so stored
// attachments stay small. Non-image payloads pass through untouched.
// Returns the bytes to store, their content type, and whether a conversion
// happened.
func NormalizeImage(data []byte, filename string) ([]byte, string, bool) {
	ct := sniffContentType(data)
	if !strings.Contains(ct, "jpeg") && !strings.Contains(ct, "png") {
		return data, ct, false
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		// corrupt or unsupported image data: store it as received
		return data, ct, false
	}

	bounds := img.Bounds()
	if bounds.Dx() > imageMaxW || bounds.Dy() > imageMaxH {
		img = imaging.Fit(img, imageMaxW, imageMaxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return data, ct, false
	}
	return buf.Bytes(), "image/webp", true
}

func sniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}
