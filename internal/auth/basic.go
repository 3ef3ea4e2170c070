package auth

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrMalformedHeader = errors.New("malformed basic authorization header")

const basicPrefix = "Basic "

// BasicHeader builds the Authorization header value for username:password.
func BasicHeader(username, password string) string {
	return basicPrefix + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// ParseBasic decodes a header produced by BasicHeader.
func ParseBasic(header string) (username, password string, err error) {
	encoded, found := strings.CutPrefix(header, basicPrefix)
	if !found || encoded == "" {
		return "", "", ErrMalformedHeader
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", ErrMalformedHeader
	}

	username, password, found = strings.Cut(string(raw), ":")
	if !found {
		return "", "", ErrMalformedHeader
	}
	return username, password, nil
}
