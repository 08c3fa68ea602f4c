// Package session issues and propagates the storefront session id. The id is
// an opaque cookie; all server-side session state (cart, notifications, admin
// view state) hangs off it.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const CookieName = "sfsid"

type ctxKey struct{}

// ID returns the session id attached by Middleware, or "" outside of it.
func ID(r *http.Request) string {
	sid, _ := r.Context().Value(ctxKey{}).(string)
	return sid
}

// Middleware ensures every request carries a session id, minting a cookie on
// first contact.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if cookie, err := r.Cookie(CookieName); err == nil {
			sid = cookie.Value
		}
		if sid == "" {
			sid = newID()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newID() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
