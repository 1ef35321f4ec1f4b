// Package session keeps per-browser state server side. The browser only holds
// an opaque id in the sid cookie; values live in an ISessionRepository.
package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CookieName = "sid"
	flashKey   = "_flashes"
	contextKey = "session"
)

// Flash kinds used by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Manager struct {
	repo   interfaces.ISessionRepository
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(repo interfaces.ISessionRepository, ttl time.Duration, secure bool) *Manager {
	return &Manager{repo: repo, ttl: ttl, secure: secure, now: time.Now}
}

// load returns the session of the current request, creating an unsaved one
// when the cookie is missing or points to an unknown id.
func (m *Manager) load(c *gin.Context) (*entities.Session, error) {
	if s, ok := c.Get(contextKey); ok {
		return s.(*entities.Session), nil
	}
	var s entities.Session
	if id, err := c.Cookie(CookieName); err == nil && id != "" {
		found, err := m.repo.Get(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		s = found
	}
	if s.ID == "" {
		s = entities.Session{ID: uuid.NewString()}
	}
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	c.Set(contextKey, &s)
	return &s, nil
}

// save persists the session and refreshes the cookie. It must run before the
// handler writes the response body.
func (m *Manager) save(c *gin.Context, s *entities.Session) error {
	s.ExpiresAt = m.now().Add(m.ttl)
	if err := m.repo.Save(c.Request.Context(), *s); err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, s.ID, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

func (m *Manager) Get(c *gin.Context, key string) (string, bool) {
	s, err := m.load(c)
	if err != nil {
		logger.FromGin(c).Warn("[session] load failed", zap.Error(err))
		return "", false
	}
	v, ok := s.Values[key]
	return v, ok
}

func (m *Manager) Set(c *gin.Context, key, value string) error {
	s, err := m.load(c)
	if err != nil {
		return err
	}
	s.Values[key] = value
	return m.save(c, s)
}

// SetJSON stores v encoded as JSON under key.
func (m *Manager) SetJSON(c *gin.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return m.Set(c, key, string(raw))
}

// PopJSON decodes and removes key. ok is false when the key is absent.
func (m *Manager) PopJSON(c *gin.Context, key string, v any) (bool, error) {
	raw, ok, err := m.Pop(c, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, err
	}
	return true, nil
}

// Pop returns and removes key.
func (m *Manager) Pop(c *gin.Context, key string) (string, bool, error) {
	s, err := m.load(c)
	if err != nil {
		return "", false, err
	}
	v, ok := s.Values[key]
	if !ok {
		return "", false, nil
	}
	delete(s.Values, key)
	return v, true, m.save(c, s)
}

// Flash queues a message for the next rendered page. Failures are logged;
// a lost flash never fails the request.
func (m *Manager) Flash(c *gin.Context, kind, message string) {
	s, err := m.load(c)
	if err == nil {
		var flashes []Flash
		if raw := s.Values[flashKey]; raw != "" {
			_ = json.Unmarshal([]byte(raw), &flashes)
		}
		flashes = append(flashes, Flash{Kind: kind, Message: message})
		raw, _ := json.Marshal(flashes)
		s.Values[flashKey] = string(raw)
		err = m.save(c, s)
	}
	if err != nil {
		logger.FromGin(c).Warn("[session] flash dropped", zap.String("message", message), zap.Error(err))
	}
}

// Flashes pops the queued messages.
func (m *Manager) Flashes(c *gin.Context) []Flash {
	var flashes []Flash
	ok, err := m.PopJSON(c, flashKey, &flashes)
	if err != nil {
		logger.FromGin(c).Warn("[session] read flashes failed", zap.Error(err))
	}
	if !ok {
		return nil
	}
	return flashes
}

// Clear deletes the stored session and expires the cookie.
func (m *Manager) Clear(c *gin.Context) {
	if id, err := c.Cookie(CookieName); err == nil && id != "" {
		if err := m.repo.Delete(c.Request.Context(), id); err != nil {
			logger.FromGin(c).Warn("[session] delete failed", zap.Error(err))
		}
	}
	c.Set(contextKey, &entities.Session{ID: uuid.NewString(), Values: map[string]string{}})
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}
