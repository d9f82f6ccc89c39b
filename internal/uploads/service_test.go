package uploads

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hero Image.PNG", "hero-image.png"},
		{"已上传.jpg", ".jpg"},
		{"", "upload"},
		{"///", "upload"},
		{"logo_v2-final.webp", "logo_v2-final.webp"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestObjectNameForIsCollisionFree(t *testing.T) {
	a := objectNameFor("banner.png")
	b := objectNameFor("banner.png")
	if a == b {
		t.Fatalf("expected distinct object names, got %q twice", a)
	}
	if !strings.HasSuffix(a, "-banner.png") {
		t.Fatalf("expected sanitized base name suffix, got %q", a)
	}
	if strings.Contains(a, "..") || strings.HasPrefix(a, "/") {
		t.Fatalf("object name must not traverse: %q", a)
	}
}
