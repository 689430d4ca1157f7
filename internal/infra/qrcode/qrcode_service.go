// Package qrcode renders card QR codes with skip2/go-qrcode.
package qrcode

import (
	"strings"

	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 300
	minSize      = 64
	maxSize      = 2048
	defaultLevel = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR renderer. Sizes outside [64, 2048] fall back to 300px.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size < minSize || size > maxSize {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseLevel(errorCorrectionLevel),
	}
}

func parseLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCardQR encodes the public card URL as a PNG.
func (s *qrcodeService) GenerateCardQR(publicURL string) ([]byte, error) {
	if strings.TrimSpace(publicURL) == "" {
		return nil, errors.New("public URL is required")
	}

	qrCode, err := qrcode.New(publicURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
