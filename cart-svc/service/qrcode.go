package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(reference string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(reference string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/order-summary.html?ref=%s", g.BaseURL, reference)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
