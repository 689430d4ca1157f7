package viewer

// Capability says whether the current context may embed foreign content.
type Capability int

const (
	CapabilityEmbeddable Capability = iota
	CapabilityMustOpenExternally
)

func (c Capability) String() string {
	if c == CapabilityMustOpenExternally {
		return "must_open_externally"
	}

	return "embeddable"
}

// CapabilityDetector classifies a client from its request metadata.
type CapabilityDetector interface {
	Detect(userAgent string) Capability
}
