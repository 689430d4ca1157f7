package impl

import (
	"encoding/base64"
	"strings"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/util"
)

// Accepted attachment media types. Only PDF and JPEG uploads are allowed.
var documentMediaTypes = map[string]entity.DocumentType{
	"application/pdf": entity.DocumentTypePDF,
	"image/jpeg":      entity.DocumentTypeImage,
	"image/jpg":       entity.DocumentTypeImage,
}

// parseDocument validates a base64 data URI attachment. An empty URI means no document.
func parseDocument(dataURI, title string, maxSize int64) (*entity.Document, error) {
	dataURI = strings.TrimSpace(dataURI)
	if dataURI == "" {
		return nil, nil
	}

	header, payload, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, domainerrors.ErrInvalidDocument
	}

	mediaType := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64"))
	docType, ok := documentMediaTypes[mediaType]
	if !ok {
		return nil, domainerrors.ErrInvalidDocument
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidDocument.WithDetails("base64 inválido")
	}
	if int64(len(decoded)) > maxSize {
		return nil, domainerrors.ErrDocumentTooLarge.WithDetails("máximo " + util.FormatBytes(maxSize))
	}

	return &entity.Document{
		Type:    docType,
		DataURI: dataURI,
		Title:   strings.TrimSpace(title),
	}, nil
}
