package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Lado máximo con el que se guarda una foto de mascota.
const maxPhotoSide = 1024

const webpQuality = 85

// DecodePhoto lee una imagen jpeg/png subida por el cliente.
func DecodePhoto(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// FitPhoto reduce la imagen para que su lado mayor quede en maxPhotoSide,
// conservando la proporción. Imágenes ya pequeñas pasan sin tocar.
func FitPhoto(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxPhotoSide && h <= maxPhotoSide {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = maxPhotoSide
		nh = h * maxPhotoSide / w
	} else {
		nh = maxPhotoSide
		nw = w * maxPhotoSide / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// EncodeWebP comprime la foto al formato con el que se sirve desde el CDN.
func EncodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
