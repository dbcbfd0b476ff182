package signature

import "strings"

// Signature maps a textual address fragment to a known service name.
type Signature struct {
	Pattern string
	Service string
}

// ServiceSignatures is scanned in declaration order and the first matching
// pattern wins, so more specific fragments must be listed before broader ones.
var ServiceSignatures = []Signature{
	// Meta/Facebook (IPv6 contains face:b00c)
	{"face:b00c", "Meta (Facebook/Instagram/WhatsApp)"},
	{"157.240.", "Meta (Facebook/Instagram/WhatsApp)"},
	{"31.13.", "Meta (Facebook/Instagram/WhatsApp)"},
	{"69.63.", "Meta (Facebook)"},
	{"69.171.", "Meta (Facebook)"},
	// Google
	{"142.250.", "Google"},
	{"172.217.", "Google"},
	{"216.58.", "Google"},
	{"2a00:1450:", "Google (IPv6)"},
	// Cloudflare
	{"1.1.1.1", "Cloudflare DNS"},
	{"1.0.0.1", "Cloudflare DNS"},
	{"104.16.", "Cloudflare"},
	{"104.24.", "Cloudflare"},
	{"2606:4700:", "Cloudflare (IPv6)"},
	// Apple
	{"17.", "Apple"},
	{"2620:149:", "Apple (IPv6)"},
	// Microsoft
	{"20.", "Microsoft"},
	{"40.", "Microsoft/Azure"},
	{"52.", "Microsoft/Azure"},
	{"2a01:111:", "Microsoft (IPv6)"},
	// Amazon
	{"3.", "Amazon AWS"},
	{"54.", "Amazon AWS"},
	// GitHub
	{"140.82.", "GitHub"},
	// Twitter/X
	{"104.244.", "Twitter/X"},
	// Discord
	{"162.159.", "Discord"},
	{"188.114.", "Discord/Cloudflare"},
	// Telegram
	{"149.154.", "Telegram"},
	{"91.108.", "Telegram"},
	// Signal
	{"13.107.", "Signal/Microsoft"},
	// Netflix
	{"23.246.", "Netflix"},
	{"45.57.", "Netflix"},
	// Spotify
	{"35.186.", "Spotify/Google"},
	// OpenAI
	{"104.18.", "OpenAI (Cloudflare)"},
}

// Category groups services by a set of lowercase keywords.
type Category struct {
	Name     string
	Keywords []string
}

// ActivityCategories is scanned in declaration order; a service belongs to the
// first category with a keyword substring match.
var ActivityCategories = []Category{
	{"social", []string{"meta", "facebook", "instagram", "whatsapp", "twitter", "tiktok", "snapchat", "linkedin"}},
	{"communication", []string{"whatsapp", "telegram", "signal", "discord", "slack", "messenger", "gmail", "outlook"}},
	{"search", []string{"google", "bing", "duckduckgo"}},
	{"development", []string{"github", "gitlab", "bitbucket", "stackoverflow", "npmjs", "pypi"}},
	{"ai", []string{"openai", "anthropic", "claude", "chatgpt", "perplexity", "gemini", "copilot"}},
	{"media", []string{"youtube", "netflix", "spotify", "twitch", "plex", "soundcloud"}},
	{"cloud", []string{"cloudflare", "aws", "azure", "gcp", "digitalocean", "amazon"}},
	{"apple", []string{"apple", "icloud", "itunes"}},
	{"microsoft", []string{"microsoft", "office", "outlook", "teams"}},
}

// IdentifyService resolves a destination address to a known service name by
// scanning the signature table in order. The second return value is false when
// no signature matches.
func IdentifyService(addr string) (string, bool) {
	lower := strings.ToLower(addr)
	for _, sig := range ServiceSignatures {
		if strings.Contains(lower, sig.Pattern) {
			return sig.Service, true
		}
	}
	return "", false
}

// Categorize maps a service name to its activity category. Every input maps to
// exactly one category; "other" is the fallback.
func Categorize(service string) string {
	lower := strings.ToLower(service)
	for _, cat := range ActivityCategories {
		for _, keyword := range cat.Keywords {
			if strings.Contains(lower, keyword) {
				return cat.Name
			}
		}
	}
	return "other"
}
