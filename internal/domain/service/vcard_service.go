package service

import "tarjeta/internal/domain/entity"

// VCardContentType is the MIME type of exported contact files.
const VCardContentType = "text/vcard; charset=utf-8"

// VCardService exports a card as a contact file.
type VCardService interface {
	// Serialize renders the card as vCard 3.0 text. Output is deterministic.
	Serialize(card *entity.Card, publicURL string) []byte

	// FileName returns the download name for a card, e.g. "Juan_Pérez.vcf".
	FileName(card *entity.Card) string
}
