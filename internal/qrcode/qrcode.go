// Package qrcode draws QR codes in the terminal and reads them back from
// images.
package qrcode

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pkg/errors"
	goqrcode "github.com/skip2/go-qrcode"
)

const (
	Dark  = "██"
	Light = "  "
)

var (
	ErrEmptyContent = errors.New("qr content is empty")
	ErrNoCode       = errors.New("no qr code found")
)

// Bitmap encodes content at the highest recovery level. True cells are dark.
func Bitmap(content string) ([][]bool, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	code, err := goqrcode.New(content, goqrcode.Highest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode qr code")
	}
	return code.Bitmap(), nil
}

// Render draws content with two characters per module so the code stays
// square in a terminal.
func Render(content string) (string, error) {
	bitmap, err := Bitmap(content)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, row := range bitmap {
		for _, dark := range row {
			if dark {
				sb.WriteString(Dark)
			} else {
				sb.WriteString(Light)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func Fprint(w io.Writer, content string) error {
	s, err := Render(content)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// PNG encodes content as a size x size PNG image.
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	data, err := goqrcode.Encode(content, goqrcode.Medium, size)
	return data, errors.Wrap(err, "failed to encode qr image")
}

// Decode reads the first QR code found in a PNG, JPEG or GIF image.
func Decode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode image")
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", errors.Wrapf(ErrNoCode, "%v", err)
	}
	return result.GetText(), nil
}

func DecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return Decode(bytes.NewReader(data))
}

// IsURL reports whether s is an absolute http(s) URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
