package device

import (
	"testing"

	"tarjeta/internal/domain/viewer"

	"github.com/stretchr/testify/assert"
)

func TestUserAgentDetector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
		want      viewer.Capability
	}{
		{
			name:      "iPhone",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15",
			want:      viewer.CapabilityMustOpenExternally,
		},
		{
			name:      "Android",
			userAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Mobile Safari/537.36",
			want:      viewer.CapabilityMustOpenExternally,
		},
		{
			name:      "Opera Mini case-insensitive",
			userAgent: "opera mini/36.2",
			want:      viewer.CapabilityMustOpenExternally,
		},
		{
			name:      "desktop Chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/126.0 Safari/537.36",
			want:      viewer.CapabilityEmbeddable,
		},
		{
			name:      "empty",
			userAgent: "",
			want:      viewer.CapabilityEmbeddable,
		},
	}

	detector := NewUserAgentDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, detector.Detect(tt.userAgent))
		})
	}
}
