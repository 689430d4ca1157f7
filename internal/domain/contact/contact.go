// Package contact turns stored contact fields into actionable URIs.
package contact

import "strings"

// MinWhatsAppDigits is the shortest number wa.me accepts.
const MinWhatsAppDigits = 10

// Target is the browsing context an action opens in.
type Target string

const (
	TargetNewContext     Target = "_blank"
	TargetCurrentContext Target = "_self"
)

// Action is a resolved contact action.
type Action struct {
	URI    string `json:"uri"`
	Target Target `json:"target"`
}

// Digits keeps only ASCII digits.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// DialString keeps digits and a single leading '+'.
func DialString(raw string) string {
	digits := Digits(raw)
	if strings.HasPrefix(strings.TrimSpace(raw), "+") {
		return "+" + digits
	}

	return digits
}

// ResolvePhone always produces a tel: URI, even for short or empty input.
func ResolvePhone(raw string) Action {
	return Action{URI: "tel:" + DialString(raw), Target: TargetCurrentContext}
}

// ResolveWhatsApp returns false when fewer than MinWhatsAppDigits digits remain.
// Callers treat false as a silent no-op.
func ResolveWhatsApp(raw string) (Action, bool) {
	digits := Digits(raw)
	if len(digits) < MinWhatsAppDigits {
		return Action{}, false
	}

	return Action{URI: "https://wa.me/" + digits, Target: TargetNewContext}, true
}

// ResolveEmail produces a mailto: URI with the address as given.
func ResolveEmail(address string) Action {
	return Action{URI: "mailto:" + address, Target: TargetCurrentContext}
}

// NormalizeLink trims the input and prepends https:// unless it already
// starts with http:// or https://. Hosts are not validated.
func NormalizeLink(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}

	return "https://" + trimmed
}

// ResolveLink normalizes a user link; links always open in a new context.
func ResolveLink(raw string) Action {
	return Action{URI: NormalizeLink(raw), Target: TargetNewContext}
}
