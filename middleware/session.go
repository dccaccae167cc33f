package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"wagecalc/logging"
	"wagecalc/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	SessionContextKey contextKey = "session"
	SessionCookieName            = "wage_session"
)

var ErrNoSession = errors.New("no wage session in context")

// Claims carry one browser session's form state. Nothing is stored server
// side; the session ends when the browser drops the cookie or the token
// expires.
type Claims struct {
	Wage models.WageInput `json:"wage"`
	jwt.RegisteredClaims
}

// Session is the per-request view of a browser session.
type Session struct {
	ID         string
	Calculator *models.Calculator
}

type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	logger *slog.Logger
}

func NewSessionManager(secret string, ttl time.Duration, secure bool, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		logger: logging.WithComponent(logger, logging.ComponentSession),
	}
}

func (m *SessionManager) GenerateToken(sessionID string, in models.WageInput) (string, error) {
	now := time.Now()
	claims := &Claims{
		Wage: in,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *SessionManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// Middleware loads the caller's session into the request context, starting
// a fresh one when the cookie is missing or cannot be trusted.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.load(w, r)
		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionManager) load(w http.ResponseWriter, r *http.Request) *Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return newSession()
	}

	claims, err := m.ValidateToken(cookie.Value)
	if err != nil {
		m.logger.WarnContext(r.Context(), "discarding invalid session cookie",
			logging.FieldRequestID, GetRequestID(r.Context()),
			logging.FieldError, err)
		m.clearCookie(w)
		return newSession()
	}

	id := claims.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Session{ID: id, Calculator: models.Restore(claims.Wage)}
}

// Save writes the session's current input back into its cookie.
func (m *SessionManager) Save(w http.ResponseWriter, session *Session) error {
	token, err := m.GenerateToken(session.ID, session.Calculator.Input())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *SessionManager) Clear(w http.ResponseWriter) {
	m.clearCookie(w)
}

func (m *SessionManager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func GetSessionFromContext(ctx context.Context) (*Session, error) {
	session, ok := ctx.Value(SessionContextKey).(*Session)
	if !ok || session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

func newSession() *Session {
	return &Session{ID: uuid.NewString(), Calculator: models.NewCalculator()}
}
