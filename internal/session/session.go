// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the server-side session manager that backs
// browser logins alongside the API bearer tokens.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Options tunes the session manager.
type Options struct {
	// Lifetime is how long a browser session stays valid. Zero falls back
	// to 24 hours.
	Lifetime time.Duration

	// SecureCookies marks the session cookie Secure. Disabled in
	// development so plain-HTTP localhost logins work.
	SecureCookies bool
}

// New creates a session manager backed by the SQLite sessions table.
func New(db *sql.DB, opts Options) *scs.SessionManager {
	lifetime := opts.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	sm.Lifetime = lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = opts.SecureCookies

	return sm
}
