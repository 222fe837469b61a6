// Package i18n resolves the request locale and renders user-facing messages.
//
// Spanish and English tables are registered in a golang.org/x/text message
// catalog. The locale comes from the lang query parameter, then the
// Accept-Language header, then the configured default.
package i18n
