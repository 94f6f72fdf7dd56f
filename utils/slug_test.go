package utils

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"turkish diacritics", "İKAS Rehberi", "ikas-rehberi"},
		{"all turkish letters", "ğüşıöç ĞÜŞİÖÇ", "gusioc-gusioc"},
		{"punctuation runs collapse", "E-ticaret:  SEO & ASO!", "e-ticaret-seo-aso"},
		{"digits kept", "Top 10 Web Trendleri 2024", "top-10-web-trendleri-2024"},
		{"leading and trailing junk", "  --Merhaba--  ", "merhaba"},
		{"empty", "", ""},
		{"only symbols", "!?***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Dijital Dönüşüm Çağında Ajanslar"
	first := Slugify(title)
	for i := 0; i < 10; i++ {
		if got := Slugify(title); got != first {
			t.Fatalf("Slugify not deterministic: %q then %q", first, got)
		}
	}
}

func TestSlugifyOutputCharset(t *testing.T) {
	titles := []string{
		"İKAS Rehberi",
		"  çok   boşluklu   başlık  ",
		"Mixed CASE & Symbols #42",
	}
	for _, title := range titles {
		slug := Slugify(title)
		if len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-') {
			t.Errorf("Slugify(%q) = %q has edge hyphen", title, slug)
		}
		prevHyphen := false
		for i := 0; i < len(slug); i++ {
			c := slug[i]
			switch {
			case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
				prevHyphen = false
			case c == '-':
				if prevHyphen {
					t.Errorf("Slugify(%q) = %q has consecutive hyphens", title, slug)
				}
				prevHyphen = true
			default:
				t.Errorf("Slugify(%q) = %q contains invalid byte %q", title, slug, c)
			}
		}
	}
}
