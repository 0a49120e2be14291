// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip sensitive values from strings
// before they appear in output, logs, or error messages.
package redact

import (
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"ADVANCECARD_TOKEN",
	"ADVANCECARD_API_KEY",
	"POWERBI_ACCESS_TOKEN",
	"AZURE_CLIENT_SECRET",
}

// sensitiveParams are query parameter names whose values are credentials.
var sensitiveParams = map[string]bool{
	"access_token": true,
	"api_key":      true,
	"apikey":       true,
	"key":          true,
	"password":     true,
	"secret":       true,
	"sig":          true,
	"token":        true,
}

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache resets the cached secrets. Used by tests that change env vars
// between calls.
func resetCache() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv.
func ResetForTest() { resetCache() }

// String replaces any occurrence of a known sensitive environment variable
// value with "[REDACTED]" and strips credentials from embedded URLs.
// Secret values are cached on first call for performance.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return urlPattern.ReplaceAllStringFunc(s, URL)
}

// URL removes the password of raw's userinfo and the values of credential
// query parameters. Strings that do not parse as URLs are returned unchanged.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	changed := false
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), Placeholder)
		changed = true
	}
	if u.RawQuery != "" {
		q := u.Query()
		masked := false
		for name := range q {
			if sensitiveParams[strings.ToLower(name)] {
				q.Set(name, Placeholder)
				masked = true
			}
		}
		if masked {
			u.RawQuery = q.Encode()
			changed = true
		}
	}
	if !changed {
		return raw
	}
	// Keep the placeholder readable instead of percent-encoded.
	return strings.NewReplacer("%5BREDACTED%5D", Placeholder).Replace(u.String())
}
