package impl

import (
	"io"
	"log/slog"
	"time"

	"tarjeta/config"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/errors"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		PublicURL: "https://tarjeta.test",
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: 6,
		},
		Card: &config.CardConfig{MaxDocumentSize: "5MiB"},
	}
}

func fixedClock() time.Time { return fixedNow }

// errorCode extracts the AppError code, or "" for other errors.
func errorCode(err error) string {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return ""
	}

	return appErr.ErrorCode()
}
