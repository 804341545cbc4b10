package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrWrongPurpose error = errors.New("token issued for another purpose")

const (
	PurposeAccess = "access"
	PurposeReset  = "reset"
)

type TokenInfo struct {
	Subject    string
	Purpose    string
	Expiration time.Duration
}

type Claims struct {
	Subject string
	Purpose string
	Expires time.Time
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":     data.Subject,
		"iat":     now.Unix(),
		"exp":     now.Add(data.Expiration).Unix(),
		"purpose": data.Purpose,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token in one step.
func (gen *JWTService) Issue(data TokenInfo) (string, error) {
	return gen.Sign(gen.Generate(data))
}

// Validate parses the token and checks signature, expiry and purpose.
func (gen *JWTService) Validate(token, purpose string) (Claims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return Claims{}, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return Claims{}, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	expires := time.Unix(int64(expVal), 0).UTC()
	if !TimeNow().Before(expires) {
		return Claims{}, fmt.Errorf("token expired at %v: %w", expires, ErrTokenExpired)
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return Claims{}, fmt.Errorf("missing sub claim: %w", ErrTokenNotValid)
	}

	tokenPurpose, _ := claims["purpose"].(string)
	if tokenPurpose != purpose {
		return Claims{}, fmt.Errorf("want %q, got %q: %w", purpose, tokenPurpose, ErrWrongPurpose)
	}

	return Claims{
		Subject: subject,
		Purpose: tokenPurpose,
		Expires: expires,
	}, nil
}
