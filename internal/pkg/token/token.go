// Package token issues the opaque session marker returned on login.
// It is a reversible base64 concatenation of the username and the issue
// time, not a signed credential.
package token

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedToken = fmt.Errorf("malformed auth token")

// Issue builds the opaque token for a username at the given instant.
func Issue(username string, now time.Time) string {
	raw := fmt.Sprintf("%s:%d", username, now.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Parse reverses Issue. The last ":" separates username from timestamp so
// usernames containing ":" survive the round trip.
func Parse(tok string) (username string, issuedAt time.Time, err error) {
	raw, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return "", time.Time{}, ErrMalformedToken
	}

	idx := strings.LastIndexByte(string(raw), ':')
	if idx <= 0 {
		return "", time.Time{}, ErrMalformedToken
	}

	millis, err := strconv.ParseInt(string(raw[idx+1:]), 10, 64)
	if err != nil {
		return "", time.Time{}, ErrMalformedToken
	}

	return string(raw[:idx]), time.UnixMilli(millis), nil
}
