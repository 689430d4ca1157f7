package service

// QRCodeService renders QR images. Encoding itself is delegated to a library.
type QRCodeService interface {
	// GenerateCardQR returns a PNG QR code encoding the card's public URL.
	GenerateCardQR(publicURL string) ([]byte, error)
}
