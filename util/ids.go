package util

import (
	"crypto/sha1"
	"encoding/base64"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
)

// ShortUUID returns a random UUID encoded as 22 base57 characters, which
// avoids look-alike characters such as 0/O and 1/l/I.
func ShortUUID() string {
	return shortuuid.DefaultEncoder.Encode(uuid.New())
}

// ShortHash returns the URL-safe base64 SHA1 digest of s without its last
// two characters. The result is safe to use in file names.
func ShortHash(s string) string {
	digest := sha1.Sum([]byte(s))
	encoded := base64.URLEncoding.EncodeToString(digest[:])
	return encoded[:len(encoded)-2]
}
