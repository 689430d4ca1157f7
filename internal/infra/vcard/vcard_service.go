// Package vcard renders cards as vCard 3.0 contact files.
package vcard

import (
	"regexp"
	"strings"

	"tarjeta/internal/domain/contact"
	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/service"
)

const (
	fallbackFileName = "contacto"
	lineBreak        = "\r\n"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

type vcardService struct{}

// NewVCardService creates the vCard exporter.
func NewVCardService() service.VCardService {
	return &vcardService{}
}

// Serialize renders the card. Optional properties are emitted only when the field is set.
func (s *vcardService) Serialize(card *entity.Card, publicURL string) []byte {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCARD")
	writeLine(&b, "VERSION:3.0")

	name := strings.TrimSpace(card.Name)
	writeLine(&b, "N:;"+escapeText(name)+";;;")
	writeLine(&b, "FN:"+escapeText(name))

	if note := strings.TrimSpace(card.Description); note != "" {
		writeLine(&b, "NOTE:"+escapeText(note))
	}

	if phone := contact.DialString(card.Phone); phone != "" && phone != "+" {
		writeLine(&b, "TEL;TYPE=CELL:"+phone)
	}

	if wa := contact.Digits(card.WhatsApp); wa != "" {
		writeLine(&b, "TEL;TYPE=WORK:+"+wa)
	}

	if email := strings.TrimSpace(card.Email); email != "" {
		writeLine(&b, "EMAIL:"+escapeText(email))
	}

	url := strings.NewReplacer("\r", "", "\n", "").Replace(publicURL)
	writeLine(&b, "URL;TYPE=WORK:"+url)
	writeLine(&b, "URL:"+url)
	writeLine(&b, "END:VCARD")

	return []byte(b.String())
}

// FileName replaces each whitespace run in the name with an underscore.
func (s *vcardService) FileName(card *entity.Card) string {
	name := strings.TrimSpace(card.Name)
	if name == "" {
		return fallbackFileName + ".vcf"
	}

	name = whitespaceRun.ReplaceAllString(name, "_")
	name = strings.NewReplacer("/", "_", `\`, "_", `"`, "").Replace(name)

	return name + ".vcf"
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString(lineBreak)
}
