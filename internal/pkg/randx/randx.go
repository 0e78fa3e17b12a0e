/*
Package randx provides functions for generating cryptographically secure random identifiers.

It is used for player IDs, avatar object keys, and the opaque part of session tokens.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// SessionTokenLength is the length of the random portion of an opaque session token.
	SessionTokenLength = 24
)

// base62String generates a Base62 string of the given length using crypto/rand.
func base62String(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// SessionToken generates an opaque Base62 session token of SessionTokenLength characters.
func SessionToken() (string, error) {
	return base62String(SessionTokenLength)
}

// UserID generates a standard UUID v4 string to serve as a unique player identifier.
func UserID() string {
	return uuid.New().String()
}

// AvatarKey generates a storage object key for an avatar image with the given file extension.
// The extension is expected to include the leading dot (e.g., ".png").
func AvatarKey(ext string) string {
	return fmt.Sprintf("avatars/%s%s", uuid.New().String(), strings.ToLower(ext))
}

// IsBase62 reports whether every character of s belongs to the Base62 character set.
func IsBase62(s string) bool {
	for _, char := range s {
		if !strings.ContainsRune(Base62Chars, char) {
			return false
		}
	}

	return len(s) > 0
}
