package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Juan Perez", expected: "juan-perez"},
		{name: "accents are folded", input: "Juan Pérez Núñez", expected: "juan-perez-nunez"},
		{name: "symbol runs collapse", input: "Café & Té -- Oaxaca!!", expected: "cafe-te-oaxaca"},
		{name: "leading and trailing trimmed", input: "  ¡Hola!  ", expected: "hola"},
		{name: "digits kept", input: "Taller 51", expected: "taller-51"},
		{name: "nothing usable", input: "★★★", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "document limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}
