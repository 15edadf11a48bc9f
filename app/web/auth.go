package web

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"
)

// authCookieName is the session cookie set on successful login. Over HTTPS
// the __Host- prefixed variant is used instead.
const authCookieName = "pitwall-auth"

// loginLimiter slows down online brute force, 5 quick attempts per client
// then one every 10 seconds
var loginLimiter = newLoginLimiter()

func newLoginLimiter() *limiter.Limiter {
	lmt := tollbooth.NewLimiter(0.1, &limiter.ExpirableOptions{DefaultExpirationTTL: 10 * time.Minute})
	lmt.SetBurst(5)
	lmt.SetMessage("Too many login attempts")
	return lmt
}

// handleLogin validates the password and starts a session
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	password, err := loginPassword(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if password == "" {
		s.writeJSONError(w, http.StatusUnauthorized, "password is required")
		return
	}

	// validate password against bcrypt hash
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		log.Printf("[WARN] failed login attempt from %s", r.RemoteAddr)
		s.writeJSONError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := s.createSession()
	if err != nil {
		log.Printf("[ERROR] can't create session: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	secure := isSecure(r)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(secure),
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.loginTTL.Seconds()),
		HttpOnly: true,
		SameSite: sameSiteFor(secure),
		Secure:   secure,
	})
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogout drops the session and clears both possible cookie names
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"__Host-" + authCookieName, authCookieName} {
		if cookie, err := r.Cookie(name); err == nil {
			s.dropSession(cookie.Value)
		}
	}

	// clear the plain cookie by setting MaxAge to -1
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // delete cookie
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isSecure(r),
	})
	// the __Host- variant requires the Secure flag to be accepted
	http.SetCookie(w, &http.Cookie{
		Name:     "__Host-" + authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // delete cookie
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   true,
	})
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// authMiddleware checks for a session cookie or falls back to basic auth
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// login and logout must stay reachable without credentials
		if r.URL.Path == "/login" || r.URL.Path == "/logout" {
			next.ServeHTTP(w, r)
			return
		}

		// check session cookie, both the plain and the __Host- prefixed name
		for _, name := range []string{"__Host-" + authCookieName, authCookieName} {
			if cookie, err := r.Cookie(name); err == nil && s.validateSession(cookie.Value) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// fallback to basic auth for API clients
		username, password, ok := r.BasicAuth()
		if ok && username == "pitwall" {
			if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err == nil {
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="Pitwall API"`)
		s.writeJSONError(w, http.StatusUnauthorized, "unauthorized")
	})
}

// loginPassword extracts the password from a JSON or form body
func loginPassword(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", fmt.Errorf("decode login request: %w", err)
		}
		return req.Password, nil
	}
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("parse login form: %w", err)
	}
	return r.FormValue("password"), nil
}

// isSecure reports whether the request arrived over HTTPS, directly or via proxy
func isSecure(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

// cookieName returns the session cookie name, __Host- prefixed on HTTPS
func cookieName(secure bool) string {
	if secure {
		return "__Host-" + authCookieName
	}
	return authCookieName
}

// sameSiteFor picks the cookie SameSite mode for the request scheme
func sameSiteFor(secure bool) http.SameSite {
	if secure {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

// createSession generates a random token and registers the session
func (s *Server) createSession() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	s.sessions[token] = session{token: token, createdAt: time.Now()}
	return token, nil
}

// validateSession checks the token and evicts it when expired
func (s *Server) validateSession(token string) bool {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Since(sess.createdAt) > s.loginTTL {
		delete(s.sessions, token)
		return false
	}
	return true
}

// dropSession removes the session for the given token
func (s *Server) dropSession(token string) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	delete(s.sessions, token)
}
