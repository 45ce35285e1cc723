// internals/features/uploads/service/image_service.go
package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Photos are normalized to webp on the way in: decode whatever the client
// sent, cap the dimensions, re-encode lossy.

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func DefaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: float32(envInt("IMAGE_WEBP_QUALITY", 80)),
	}
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// ConvertToWebP decodes jpeg/png/webp bytes (sniffed, not trusted from the
// filename) and returns webp bytes plus the ".webp" replacement name.
func ConvertToWebP(data []byte, filename string, opts WebPOptions) ([]byte, string, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, "", err
	}

	if opts.MaxW > 0 && opts.MaxH > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > opts.MaxW || bounds.Dy() > opts.MaxH {
			img = imaging.Fit(img, opts.MaxW, opts.MaxH, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opts.Quality}); err != nil {
		return nil, "", err
	}

	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return buf.Bytes(), base + ".webp", nil
}

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported image type %q", ct)
	}
}
