// Package i18n provides the locale-keyed message catalog used for
// client-facing error text.
//
// Templates are flat id->text maps loaded once at startup, one set per
// supported locale, with positional {0}, {1}, ... placeholders. Resolution
// falls back from the requested locale to the default locale, and finally to
// the raw message id so a catalog defect can never blank out a response. A
// separate log namespace carries operator-facing diagnostic text that is
// resolved against the default locale only and never returned to clients.
package i18n
