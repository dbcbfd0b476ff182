package signature

import "testing"

func TestIdentifyService(t *testing.T) {
	tests := []struct {
		addr    string
		service string
		ok      bool
	}{
		{"1.1.1.1", "Cloudflare DNS", true},
		{"157.240.1.35", "Meta (Facebook/Instagram/WhatsApp)", true},
		{"2A03:2880:F136:82:FACE:B00C:0:25DE", "Meta (Facebook/Instagram/WhatsApp)", true},
		{"142.250.74.110", "Google", true},
		{"140.82.121.4", "GitHub", true},
		{"192.0.2.1", "", false},
	}
	for _, tt := range tests {
		service, ok := IdentifyService(tt.addr)
		if ok != tt.ok || service != tt.service {
			t.Errorf("IdentifyService(%q) = (%q, %v), want (%q, %v)", tt.addr, service, ok, tt.service, tt.ok)
		}
	}
}

func TestIdentifyServiceFirstMatchWins(t *testing.T) {
	// 40.104.16.5 contains both the Cloudflare "104.16." fragment and the
	// Microsoft "40." fragment; Cloudflare is declared earlier in the table.
	service, ok := IdentifyService("40.104.16.5")
	if !ok {
		t.Fatal("expected a match")
	}
	if service != "Cloudflare" {
		t.Errorf("expected earlier-declared signature to win, got %q", service)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		service  string
		category string
	}{
		{"Meta (Facebook/Instagram/WhatsApp)", "social"},
		{"Telegram", "communication"},
		{"Google", "search"},
		{"GitHub", "development"},
		{"OpenAI (Cloudflare)", "ai"},
		{"Netflix", "media"},
		// "cloudflare dns" contains the "cloudflare" keyword of the cloud category.
		{"Cloudflare DNS", "cloud"},
		{"Apple", "apple"},
		{"Unknown", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := Categorize(tt.service); got != tt.category {
			t.Errorf("Categorize(%q) = %q, want %q", tt.service, got, tt.category)
		}
	}
}

func TestCategorizeIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Categorize("Spotify/Google"); got != "search" {
			t.Fatalf("Categorize is not stable across calls, got %q", got)
		}
	}
}
