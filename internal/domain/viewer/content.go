// Package viewer models the in-page overlay that shows or launches content tied to a card.
package viewer

import (
	"time"

	"tarjeta/internal/domain/contact"
)

// Kind discriminates the Content variant.
type Kind string

const (
	KindPDF                 Kind = "pdf"
	KindImage               Kind = "image"
	KindWebsiteEmbeddable   Kind = "website_embeddable"
	KindWebsiteExternalOnly Kind = "website_external_only"
	KindWhatsApp            Kind = "whatsapp"
	KindEmail               Kind = "email"
	KindPhone               Kind = "phone"
)

const (
	// PDFViewerParams suppresses the browser PDF toolbar and side panes.
	PDFViewerParams = "#toolbar=0&navpanes=0&scrollbar=1"

	// FrameSandbox is applied to embedded websites.
	FrameSandbox = "allow-same-origin allow-scripts allow-popups allow-forms"

	// ActionCloseDelay gives a navigation started from an action panel time to begin.
	ActionCloseDelay = 500 * time.Millisecond
)

// Content is a tagged variant. Build it only through the constructors so
// the value always matches its kind.
type Content struct {
	kind  Kind
	value string
	title string
}

func PDF(url, title string) Content   { return Content{kind: KindPDF, value: url, title: title} }
func Image(url, title string) Content { return Content{kind: KindImage, value: url, title: title} }

// Website picks the embeddable or external-only variant from the capability.
func Website(url, title string, capability Capability) Content {
	if capability == CapabilityMustOpenExternally {
		return Content{kind: KindWebsiteExternalOnly, value: url, title: title}
	}

	return Content{kind: KindWebsiteEmbeddable, value: url, title: title}
}

func WhatsApp(action contact.Action, title string) Content {
	return Content{kind: KindWhatsApp, value: action.URI, title: title}
}

func Email(action contact.Action, title string) Content {
	return Content{kind: KindEmail, value: action.URI, title: title}
}

func Phone(action contact.Action, title string) Content {
	return Content{kind: KindPhone, value: action.URI, title: title}
}

// Kind returns the variant tag.
func (c Content) Kind() Kind { return c.kind }

// Value returns the URL or URI carried by the variant.
func (c Content) Value() string { return c.value }

// Title returns the display title.
func (c Content) Title() string { return c.title }

// IsZero reports whether the content was never constructed.
func (c Content) IsZero() bool { return c.kind == "" }

// SurfaceKind is what the overlay renders.
type SurfaceKind string

const (
	SurfaceFrame          SurfaceKind = "frame"
	SurfaceImage          SurfaceKind = "image"
	SurfaceExternalButton SurfaceKind = "external_button"
	SurfaceActionPanel    SurfaceKind = "action_panel"
)

// Surface describes how to present a Content.
type Surface struct {
	Kind         SurfaceKind    `json:"kind"`
	ContentKind  Kind           `json:"content_kind"`
	Title        string         `json:"title"`
	Src          string         `json:"src,omitempty"`
	Sandbox      string         `json:"sandbox,omitempty"`
	Scrollable   bool           `json:"scrollable,omitempty"`
	Action       contact.Action `json:"action,omitempty"`
	CloseDelayMS int64          `json:"close_delay_ms"`
}

// Surface maps the variant to its presentation.
func (c Content) Surface() Surface {
	s := Surface{ContentKind: c.kind, Title: c.title}

	switch c.kind {
	case KindPDF:
		s.Kind = SurfaceFrame
		s.Src = c.value + PDFViewerParams
		s.Scrollable = true
	case KindImage:
		s.Kind = SurfaceImage
		s.Src = c.value
	case KindWebsiteEmbeddable:
		s.Kind = SurfaceFrame
		s.Src = c.value
		s.Sandbox = FrameSandbox
	case KindWebsiteExternalOnly:
		s.Kind = SurfaceExternalButton
		s.Action = contact.Action{URI: c.value, Target: contact.TargetNewContext}
	case KindWhatsApp, KindEmail, KindPhone:
		s.Kind = SurfaceActionPanel
		s.Action = contact.Action{URI: c.value, Target: contact.TargetCurrentContext}
		s.CloseDelayMS = ActionCloseDelay.Milliseconds()
	}

	return s
}
