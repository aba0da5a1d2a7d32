// Package auth provides authentication and session management utilities.
//
// Session keys should be 32 or 64 bytes for HMAC authentication,
// and 16, 24, or 32 bytes for AES encryption. Production deployments
// must use cryptographically random keys generated with:
//
//	openssl rand -base64 32
package auth

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionPrefix = "session:"
	defaultSessionMaxAge = 7 * 24 * time.Hour
)

// SessionConfig configures a RedisStore.
type SessionConfig struct {
	AuthKey       []byte
	EncryptionKey []byte
	// Secure restricts the cookie to HTTPS; enable it in production.
	Secure bool
	// MaxAge defaults to seven days.
	MaxAge time.Duration
	// KeyPrefix defaults to "session:".
	KeyPrefix string
}

// RedisStore is a sessions.Store backed by Redis. Only an encrypted session
// ID travels in the HttpOnly, SameSite=Lax cookie; values stay server-side,
// gob-encoded under "<prefix><id>" with a TTL equal to the session MaxAge.
type RedisStore struct {
	client  *redis.Client
	codecs  []securecookie.Codec
	options sessions.Options
	prefix  string
}

// NewSessionStore creates a Redis-backed session store.
//
//	store := auth.NewSessionStore(app.Redis.Client(), auth.SessionConfig{
//	    AuthKey:       []byte(cfg.SessionAuthKey),
//	    EncryptionKey: []byte(cfg.SessionEncryptionKey),
//	    Secure:        cfg.IsProduction(),
//	})
func NewSessionStore(client *redis.Client, cfg SessionConfig) *RedisStore {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultSessionPrefix
	}
	return &RedisStore{
		client: client,
		codecs: securecookie.CodecsFromPairs(cfg.AuthKey, cfg.EncryptionKey),
		options: sessions.Options{
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			HttpOnly: true,
			Secure:   cfg.Secure,
			SameSite: http.SameSiteLaxMode,
		},
		prefix: prefix,
	}
}

// Get returns the cached session for the request, loading it on first use.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New builds a session from the request cookie. Missing, tampered or expired
// cookies and evicted Redis entries all yield a fresh session without error.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := s.options
	session.Options = &opts
	session.IsNew = true

	id, ok := s.decodeCookie(r, name)
	if !ok {
		return session, nil
	}

	values, err := s.load(r.Context(), id)
	if err != nil {
		return session, nil
	}
	session.ID = id
	session.Values = values
	session.IsNew = false
	return session, nil
}

// Save writes the session to Redis and sets the cookie. A negative MaxAge
// deletes both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(r.Context(), s.prefix+session.ID).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}

	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.store(r.Context(), session.ID, session.Values, ttl); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *RedisStore) decodeCookie(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return "", false
	}
	return id, id != ""
}

func (s *RedisStore) store(ctx context.Context, id string, values map[any]any, ttl time.Duration) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+id, buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, id string) (map[any]any, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s expired", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	values := make(map[any]any)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return nil, fmt.Errorf("decode session values: %w", err)
	}
	return values, nil
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}
