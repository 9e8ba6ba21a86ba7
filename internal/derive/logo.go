package derive

import "fmt"

// LogoFallbacks builds the ordered logo URL candidates for a domain:
// Clearbit's logo API, Google's favicon service, icon.horse. The
// consumer tries each in order and falls back to a placeholder glyph
// once all three fail. Pure URL construction, no network access.
// Returns nil for an absent domain.
func LogoFallbacks(domain string) []string {
	if domain == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("https://logo.clearbit.com/%s", domain),
		fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=128", domain),
		fmt.Sprintf("https://icon.horse/icon/%s", domain),
	}
}
