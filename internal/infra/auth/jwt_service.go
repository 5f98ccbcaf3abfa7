// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"wishlist/config"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret         []byte
	previousSecret []byte // accepted for verification only; never signs.
	method         jwt.SigningMethod
	ttl            time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method := jwt.GetSigningMethod(cfg.Auth.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported signing algorithm: %s", cfg.Auth.Algorithm)
	}

	svc := &jwtService{
		secret: []byte(cfg.Auth.Secret),
		method: method,
		ttl:    cfg.Auth.TokenTTL(),
	}
	if cfg.Auth.PreviousSecret != "" {
		svc.previousSecret = []byte(cfg.Auth.PreviousSecret)
	}

	return svc, nil
}

// Issue creates a signed access token for the given user.
func (s *jwtService) Issue(userID int64, username string) (string, int64, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"username": username,
		"iat":      now.Unix(),            // Issued At
		"exp":      now.Add(s.ttl).Unix(), // Expiration Time
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, errors.Wrap(err, "sign token")
	}

	return token, int64(s.ttl.Seconds()), nil
}

// Validate checks a token string and returns its claims. Expired,
// malformed, unsigned, or foreign-signature tokens all map to the same
// domain error so callers cannot distinguish the failure mode.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parsed, err := s.parse(tokenString, s.secret)
	if err != nil && s.previousSecret != nil && errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		// Secret rotation: tokens signed with the retired secret stay
		// valid until they expire.
		parsed, err = s.parse(tokenString, s.previousSecret)
	}
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	username, _ := mapClaims["username"].(string)

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &service.Claims{
		UserID:    userID,
		Username:  username,
		ExpiresAt: exp.Time,
	}, nil
}

// ResolveSubject validates a token and returns only the user ID it names.
func (s *jwtService) ResolveSubject(tokenString string) (int64, error) {
	claims, err := s.Validate(tokenString)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}

func (s *jwtService) parse(tokenString string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithExpirationRequired())
}
