package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func (p *AuthProcessor) issue(ctx context.Context, user User) (Session, error) {
	now := p.now()
	expiresAt := now.Add(p.tokenTTL)

	claims := BaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AuthType:  authTypeMock,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return Session{}, ErrFailedSignIn
	}

	return Session{Token: tokenString, ExpiresAt: expiresAt.UTC(), User: user}, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(issuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Info(ctx, "token expired")
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.Info(ctx, "failed to parse token: "+err.Error())
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	return baseClaims, nil
}

// UserFromClaims rebuilds the session user carried by a token.
func UserFromClaims(claims BaseClaims) (User, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return User{}, ErrInvalidJWTToken
	}
	return User{
		ID:        id,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
