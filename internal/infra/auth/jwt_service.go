package auth

import (
	"time"

	"tarjeta/config"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	defaultAccessTTL = 15 * time.Minute
	claimSubject     = "sub"
	claimType        = "type"
	claimRoles       = "roles"
)

// ErrInvalidToken covers every reason a bearer token is rejected.
var ErrInvalidToken = errors.New("invalid token")

// jwtService implements TokenService with HS256 tokens.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService validates the secret and builds the token service.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user's roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		claimSubject: userID.String(),
		"iat":        now.Unix(),
		"exp":        now.Add(s.accessTTL).Unix(),
		claimType:    tokenTypeAccess,
		claimRoles:   roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateAccessToken parses the token, checks signature, expiry and type, and extracts claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(ErrInvalidToken, "unexpected claims type")
	}

	if tokenType, _ := mapClaims[claimType].(string); tokenType != tokenTypeAccess {
		return nil, errors.Wrap(ErrInvalidToken, "not an access token")
	}

	subject, _ := mapClaims[claimSubject].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "invalid subject")
	}

	rolesClaim, _ := mapClaims[claimRoles].([]any)
	roles := make([]string, 0, len(rolesClaim))
	for _, r := range rolesClaim {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenTypeAccess,
	}, nil
}
