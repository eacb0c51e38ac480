package nexabank

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/internal/apierror"
	"github.com/jerry-enebeli/nexabank/model"
)

// SessionManager issues and verifies the bearer tokens that authenticate
// requests. A token is only half of a live session: the account's
// last-activity timestamp enforces the idle timeout independently of the
// token's own expiry.
type SessionManager struct {
	secret      []byte
	tokenTTL    time.Duration
	idleTimeout time.Duration
	otpTTL      time.Duration
}

func NewSessionManager(conf *config.Configuration) *SessionManager {
	return &SessionManager{
		secret:      []byte(conf.Session.TokenSecret),
		tokenTTL:    time.Duration(conf.Session.TokenExpireHours) * time.Hour,
		idleTimeout: time.Duration(conf.Session.IdleTimeoutMinutes) * time.Minute,
		otpTTL:      time.Duration(conf.Session.OTPExpireMinutes) * time.Minute,
	}
}

// Issue creates a signed token for the given account.
func (s *SessionManager) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apierror.NewAPIError(apierror.ErrInternalServer, "Failed to issue session token", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the account ID it
// was issued for.
func (s *SessionManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apierror.NewAPIError(apierror.ErrUnauthorized, "Unexpected signing method", nil)
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apierror.NewAPIError(apierror.ErrUnauthorized, "Invalid or expired session token", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apierror.NewAPIError(apierror.ErrUnauthorized, "Invalid session claims", nil)
	}
	return claims.Subject, nil
}

// IdleExpired reports whether a session has been inactive past the idle
// timeout.
func (s *SessionManager) IdleExpired(lastActivity time.Time, now time.Time) bool {
	if lastActivity.IsZero() {
		return false
	}
	return now.Sub(lastActivity) > s.idleTimeout
}

// AuthorizeSession resolves a bearer token to its live account. It rejects
// idle-expired sessions and stamps fresh activity on success, so every
// authenticated request extends the session.
func (n *Nexabank) AuthorizeSession(ctx context.Context, tokenString string) (*model.Account, error) {
	accountID, err := n.sessions.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	account, err := n.datasource.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, "Session account no longer exists", err)
	}
	now := time.Now()
	if n.sessions.IdleExpired(account.LastActivity, now) {
		return nil, apierror.NewAPIError(apierror.ErrSessionExpired, "Session expired due to inactivity. Please log in again", nil)
	}
	if err := n.datasource.TouchLastActivity(ctx, account.AccountID, now); err != nil {
		return nil, err
	}
	account.LastActivity = now
	return account, nil
}
