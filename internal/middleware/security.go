// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// securityHeaders are applied to every response. Public portfolio pages
// embed user-supplied content and custom CSS, so the usual protections
// against MIME sniffing, clickjacking, and referrer leakage apply to every
// route.
var securityHeaders = [...][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "SAMEORIGIN"},
	// Legacy XSS filter off; it causes more problems than it solves.
	{"X-XSS-Protection", "0"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Permissions-Policy", "interest-cohort=()"},
}

// SecureHeaders sets the security response headers before the handler runs.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, pair := range securityHeaders {
			h.Set(pair[0], pair[1])
		}
		next.ServeHTTP(w, r)
	})
}
