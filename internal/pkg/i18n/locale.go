package i18n

import "context"

type localeKey struct{}

// SetLocale stores the resolved request locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// GetLocale returns the request locale stored in the context, or "" when no
// locale middleware ran. Catalog resolution treats "" as the default locale.
func GetLocale(ctx context.Context) string {
	if loc, ok := ctx.Value(localeKey{}).(string); ok {
		return loc
	}
	return ""
}
