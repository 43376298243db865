// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Normalisasi logo/gambar upload: decode → downscale → encode webp.
// Output selalu webp supaya ukuran simpan kecil & seragam.

const (
	maxUploadBytes = 2 << 20 // 2MB
	webpQuality    = 80
)

func ConvertImageToWebP(fileHeader *multipart.FileHeader, maxW, maxH int) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(src, maxUploadBytes+1)); err != nil {
		return nil, fmt.Errorf("gagal membaca file gambar: %w", err)
	}
	if buf.Len() > maxUploadBytes {
		return nil, fmt.Errorf("ukuran gambar melebihi %dKB", maxUploadBytes/1024)
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		// coba webp (tidak terdaftar di image.Decode default)
		img, err = webp.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return nil, fmt.Errorf("format gambar tidak didukung: %w", err)
		}
	}

	if maxW > 0 || maxH > 0 {
		img = imaging.Fit(img, maxW, maxH, imaging.CatmullRom)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return out.Bytes(), nil
}
