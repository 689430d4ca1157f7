// Package device classifies clients for the content viewer.
package device

import (
	"regexp"

	"tarjeta/internal/domain/viewer"
)

var mobileUserAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

type userAgentDetector struct{}

// NewUserAgentDetector treats mobile user agents as unable to embed foreign pages.
func NewUserAgentDetector() viewer.CapabilityDetector {
	return userAgentDetector{}
}

// Detect implements viewer.CapabilityDetector.
func (userAgentDetector) Detect(userAgent string) viewer.Capability {
	if mobileUserAgent.MatchString(userAgent) {
		return viewer.CapabilityMustOpenExternally
	}

	return viewer.CapabilityEmbeddable
}
