package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders the printable QR code that points customers at a
// restaurant's public menu page.
type QRGenerator struct {
	BaseURL string
}

func (g QRGenerator) MenuPNG(slug string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	url := fmt.Sprintf("%s/r/%s/menu", g.BaseURL, slug)
	return qrcode.Encode(url, qrcode.Medium, size)
}
