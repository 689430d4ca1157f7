package impl

import (
	"context"
	"log/slog"
	"strings"

	"tarjeta/config"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/contact"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/domain/viewer"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const (
	labelSaveContact = "💾 Guardar contacto"
	labelCall        = "📞 Llamar"
	labelWhatsApp    = "📱 WhatsApp"
	labelDocument    = "📄 Ver documento"
	labelEmail       = "📧 Enviar email"
)

type cardViewService struct {
	cards     repository.CardReader
	vcard     service.VCardService
	qrcode    service.QRCodeService
	detector  viewer.CapabilityDetector
	tracer    trace.Tracer
	publicURL string
	logger    *slog.Logger
}

// CardViewServiceParams holds dependencies for CardViewService, injected by Fx.
type CardViewServiceParams struct {
	fx.In

	Cards    repository.CardReader
	VCard    service.VCardService
	QRCode   service.QRCodeService
	Detector viewer.CapabilityDetector
	Tracer   trace.Tracer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCardViewService creates the public card view use case.
func NewCardViewService(params CardViewServiceParams) usecase.CardViewUsecase {
	return &cardViewService{
		cards:     params.Cards,
		vcard:     params.VCard,
		qrcode:    params.QRCode,
		detector:  params.Detector,
		tracer:    params.Tracer,
		publicURL: strings.TrimRight(params.Config.PublicURL, "/"),
		logger:    params.Logger,
	}
}

// foundCard is the typed result of the first pipeline step. The link step
// only accepts a foundCard, so links are never fetched for a missing card.
type foundCard struct {
	card *entity.Card
}

// GetCardView runs the two-step pipeline and composes the blocks in render order.
func (s *cardViewService) GetCardView(ctx context.Context, slug string) (*usecase.CardView, error) {
	ctx, span := s.tracer.Start(ctx, "CardView.GetCardView", trace.WithAttributes(attribute.String("card.slug", slug)))
	defer span.End()

	found, err := s.findCard(ctx, slug)
	if err != nil {
		return nil, err
	}

	links, err := s.loadLinks(ctx, found)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("card.links", len(links)))

	return s.compose(found, links), nil
}

// ExportVCard renders the card found by slug as a vCard file.
func (s *cardViewService) ExportVCard(ctx context.Context, slug string) (*usecase.VCardFile, error) {
	found, err := s.findCard(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &usecase.VCardFile{
		FileName:    s.vcard.FileName(found.card),
		ContentType: service.VCardContentType,
		Data:        s.vcard.Serialize(found.card, s.cardURL(found.card.Slug)),
	}, nil
}

// GetQRCode renders a QR code of the card's public URL.
func (s *cardViewService) GetQRCode(ctx context.Context, slug string) ([]byte, error) {
	found, err := s.findCard(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateCardQR(s.cardURL(found.card.Slug))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate card QR")
	}

	return png, nil
}

// OpenContent resolves the viewer surface for the selected content of the card.
func (s *cardViewService) OpenContent(ctx context.Context, slug string, input *usecase.OpenContentInput) (*viewer.Surface, error) {
	if input == nil || !input.Content.IsValid() {
		return nil, domainerrors.ErrInvalidContent
	}

	found, err := s.findCard(ctx, slug)
	if err != nil {
		return nil, err
	}
	card := found.card

	var content viewer.Content

	switch input.Content {
	case usecase.ContentDocument:
		if card.Document == nil || card.Document.DataURI == "" {
			return nil, domainerrors.ErrInvalidContent
		}
		title := documentTitle(card.Document)
		if card.Document.Type == entity.DocumentTypePDF {
			content = viewer.PDF(card.Document.DataURI, title)
		} else {
			content = viewer.Image(card.Document.DataURI, title)
		}

	case usecase.ContentWebsite:
		if input.LinkID == nil {
			return nil, domainerrors.ErrInvalidContent
		}
		link, err := s.findLink(ctx, found, *input.LinkID)
		if err != nil {
			return nil, err
		}
		content = viewer.Website(contact.NormalizeLink(link.URL), link.Title, s.detector.Detect(input.UserAgent))

	case usecase.ContentWhatsApp:
		if strings.TrimSpace(card.WhatsApp) == "" {
			return nil, domainerrors.ErrInvalidContent
		}
		action, ok := contact.ResolveWhatsApp(card.WhatsApp)
		if !ok {
			return nil, nil
		}
		content = viewer.WhatsApp(action, "WhatsApp")

	case usecase.ContentEmail:
		if !card.EmailVisible() {
			return nil, domainerrors.ErrInvalidContent
		}
		content = viewer.Email(contact.ResolveEmail(card.Email), card.Email)

	case usecase.ContentPhone:
		if strings.TrimSpace(card.Phone) == "" {
			return nil, domainerrors.ErrInvalidContent
		}
		content = viewer.Phone(contact.ResolvePhone(card.Phone), card.Phone)
	}

	surface := content.Surface()

	return &surface, nil
}

// findCard is the first pipeline step. Not-found maps to the card-not-found
// error; any other failure is logged and surfaced as a generic failure.
func (s *cardViewService) findCard(ctx context.Context, slug string) (foundCard, error) {
	ctx, span := s.tracer.Start(ctx, "CardView.findCard")
	defer span.End()

	card, err := s.cards.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return foundCard{}, domainerrors.ErrCardNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "find card failed")
		s.log(ctx).Error("Failed to load card", slog.String("slug", slug), slog.Any("error", err))

		return foundCard{}, errors.Wrap(err, "failed to find card by slug")
	}

	return foundCard{card: card}, nil
}

// loadLinks is the second pipeline step.
func (s *cardViewService) loadLinks(ctx context.Context, found foundCard) ([]*entity.Link, error) {
	ctx, span := s.tracer.Start(ctx, "CardView.loadLinks", trace.WithAttributes(attribute.String("card.id", found.card.ID.String())))
	defer span.End()

	links, err := s.cards.ListLinks(ctx, found.card.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list links failed")
		s.log(ctx).Error("Failed to load card links", slog.String("card_id", found.card.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list card links")
	}

	sorted := make([]*entity.Link, len(links))
	copy(sorted, links)
	entity.SortLinks(sorted)

	return sorted, nil
}

func (s *cardViewService) findLink(ctx context.Context, found foundCard, linkID uuid.UUID) (*entity.Link, error) {
	links, err := s.loadLinks(ctx, found)
	if err != nil {
		return nil, err
	}

	for _, link := range links {
		if link.ID == linkID {
			return link, nil
		}
	}

	return nil, domainerrors.ErrLinkNotFound
}

func (s *cardViewService) compose(found foundCard, links []*entity.Link) *usecase.CardView {
	card := found.card

	view := &usecase.CardView{
		Hook:       usecase.HookCard,
		Slug:       card.Slug,
		PublicURL:  s.cardURL(card.Slug),
		ThemeColor: card.Theme(),
		Profile:    profileBlock(card),
		Actions:    actionBlocks(card),
		Links:      make([]usecase.LinkBlock, 0, len(links)),
		Socials:    socialBlocks(card),
	}

	for _, link := range links {
		view.Links = append(view.Links, usecase.LinkBlock{
			ID:     link.ID,
			Hook:   usecase.HookLinkPrefix + link.ID.String(),
			Title:  link.Title,
			Action: contact.ResolveLink(link.URL),
		})
	}

	if qr := strings.TrimSpace(card.QRURL); qr != "" {
		view.QR = &usecase.QRBlock{Hook: usecase.HookQRCode, Src: qr}
	}

	return view
}

func profileBlock(card *entity.Card) usecase.ProfileBlock {
	shape := card.PhotoShape
	if shape == "" {
		shape = entity.PhotoShapeCircle
	}

	block := usecase.ProfileBlock{
		PhotoShape: shape,
		Name:       card.Name,
		NameHook:   usecase.HookName,
	}

	if photo := strings.TrimSpace(card.Photo); photo != "" {
		block.Hook = usecase.HookProfileImage
		block.PhotoURL = photo
	} else {
		block.Hook = usecase.HookProfileAvatar
		block.Initials = card.Initials()
	}

	if desc := strings.TrimSpace(card.Description); desc != "" {
		block.Description = desc
		block.DescriptionHook = usecase.HookDescription
	}

	return block
}

// actionBlocks lists the primary actions in their fixed order:
// save contact, call, WhatsApp, document, email.
func actionBlocks(card *entity.Card) []usecase.ActionBlock {
	actions := []usecase.ActionBlock{{
		Kind:   usecase.ActionSaveContact,
		Hook:   usecase.HookSaveContact,
		Label:  labelSaveContact,
		Action: &contact.Action{URI: "/api/v1/public/cards/" + card.Slug + "/vcard", Target: contact.TargetCurrentContext},
	}}

	if strings.TrimSpace(card.Phone) != "" {
		action := contact.ResolvePhone(card.Phone)
		actions = append(actions, usecase.ActionBlock{
			Kind:    usecase.ActionCall,
			Hook:    usecase.HookPhone,
			Label:   labelCall,
			Action:  &action,
			Content: usecase.ContentPhone,
		})
	}

	if strings.TrimSpace(card.WhatsApp) != "" {
		block := usecase.ActionBlock{
			Kind:    usecase.ActionWhatsApp,
			Hook:    usecase.HookWhatsApp,
			Label:   labelWhatsApp,
			Content: usecase.ContentWhatsApp,
		}
		// Too-short numbers keep the button but resolve to no action.
		if action, ok := contact.ResolveWhatsApp(card.WhatsApp); ok {
			block.Action = &action
		}
		actions = append(actions, block)
	}

	if card.Document != nil && card.Document.DataURI != "" {
		actions = append(actions, usecase.ActionBlock{
			Kind:    usecase.ActionDocument,
			Hook:    usecase.HookDocument,
			Label:   documentLabel(card.Document),
			Action:  &contact.Action{URI: usecase.ViewerPath(card.Slug, usecase.ContentDocument), Target: contact.TargetCurrentContext},
			Content: usecase.ContentDocument,
		})
	}

	if card.EmailVisible() {
		action := contact.ResolveEmail(card.Email)
		actions = append(actions, usecase.ActionBlock{
			Kind:    usecase.ActionEmail,
			Hook:    usecase.HookEmail,
			Label:   labelEmail,
			Action:  &action,
			Content: usecase.ContentEmail,
		})
	}

	return actions
}

func socialBlocks(card *entity.Card) []usecase.SocialBlock {
	socials := make([]usecase.SocialBlock, 0, len(entity.SocialPlatforms))

	for _, platform := range entity.SocialPlatforms {
		value, shown := card.Social(platform)
		if !shown {
			continue
		}
		socials = append(socials, usecase.SocialBlock{
			Platform: platform,
			Hook:     usecase.HookSocialPrefix + string(platform),
			Action:   contact.Action{URI: socialURL(platform, value), Target: contact.TargetNewContext},
		})
	}

	return socials
}

// socialURL expands a bare handle into a profile URL. Full URLs pass through.
func socialURL(platform entity.SocialPlatform, value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	handle := strings.TrimPrefix(value, "@")

	switch platform {
	case entity.SocialInstagram:
		return "https://instagram.com/" + handle
	case entity.SocialFacebook:
		return "https://facebook.com/" + handle
	case entity.SocialTikTok:
		return "https://www.tiktok.com/@" + handle
	default:
		return contact.NormalizeLink(value)
	}
}

func documentTitle(doc *entity.Document) string {
	if doc.Title != "" {
		return doc.Title
	}

	return "Documento"
}

func documentLabel(doc *entity.Document) string {
	if doc.Title != "" {
		return "📄 " + doc.Title
	}

	return labelDocument
}

func (s *cardViewService) cardURL(slug string) string {
	return s.publicURL + usecase.CardPath(slug)
}

func (s *cardViewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
