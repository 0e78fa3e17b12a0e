package randx

import (
	"strings"
	"testing"
)

func TestSessionToken(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		token, err := SessionToken()
		if err != nil {
			t.Fatalf("SessionToken() failed: %v", err)
		}
		if len(token) != SessionTokenLength {
			t.Fatalf("expected length %d, got %d", SessionTokenLength, len(token))
		}
		if !IsBase62(token) {
			t.Fatalf("token contains characters outside Base62: %q", token)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = struct{}{}
	}
}

func TestAvatarKey(t *testing.T) {
	key := AvatarKey(".PNG")

	if !strings.HasPrefix(key, "avatars/") {
		t.Fatalf("expected avatars/ prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("expected lowercased extension, got %q", key)
	}
}

func TestIsBase62(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"abcXYZ019", true},
		{"", false},
		{"with space", false},
		{"dash-ed", false},
	}

	for _, tc := range cases {
		if got := IsBase62(tc.in); got != tc.want {
			t.Errorf("IsBase62(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
