package core

import (
	"context"
	"deepdetect/internal/repository"
	tokenIssuer "deepdetect/pkg/jwt"
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

// Register creates an account. It does not log the user in.
func (d *DeepDetect) Register(ctx context.Context, msg RegisterMessage) error {
	_, err := d.repo.GetUserByEmail(ctx, msg.Email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := d.repo.CreateUser(ctx, msg.Username, msg.Email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	d.logs.Infow("user registered", "userId", user.ID)
	return nil
}

// Login checks the credentials and issues a 24h access token for the user.
func (d *DeepDetect) Login(ctx context.Context, msg LoginMessage) (string, error) {
	user, err := d.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := d.tokens.Issue(tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Purpose:    tokenIssuer.PurposeAccess,
		Expiration: accessTokenTTL,
	})
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Authorize resolves an access token to the id of its user.
func (d *DeepDetect) Authorize(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	claims, err := d.tokens.Validate(token, tokenIssuer.PurposeAccess)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return claims.Subject, nil
}

func (d *DeepDetect) Me(ctx context.Context, token string) (UserProfile, error) {
	userID, err := d.Authorize(token)
	if err != nil {
		return UserProfile{}, err
	}

	user, err := d.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ForgotPassword emails a reset link carrying a 1h reset token.
func (d *DeepDetect) ForgotPassword(ctx context.Context, email string) error {
	user, err := d.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email: %w", err)
	}

	token, err := d.tokens.Issue(tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Purpose:    tokenIssuer.PurposeReset,
		Expiration: resetTokenTTL,
	})
	if err != nil {
		return fmt.Errorf("signing reset token: %w", err)
	}

	link, err := d.resetLink(token)
	if err != nil {
		return err
	}

	if err := d.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	d.logs.Infow("password reset link sent", "userId", user.ID)
	return nil
}

func (d *DeepDetect) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrResetTokenRequired
	}

	claims, err := d.tokens.Validate(token, tokenIssuer.PurposeReset)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResetToken, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = d.repo.UpdatePassword(ctx, claims.Subject, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	d.logs.Infow("password reset", "userId", claims.Subject)
	return nil
}

func (d *DeepDetect) resetLink(token string) (string, error) {
	u, err := url.Parse(d.settings.ResetLinkBase)
	if err != nil {
		return "", fmt.Errorf("parse reset link base: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
