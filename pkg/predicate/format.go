package predicate

import (
	"encoding/json"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var (
	base64Regex  = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
	dataURIRegex = regexp.MustCompile(`(?i)^data:([a-z]+/[a-z0-9.+-]+(;[a-z-]+=[a-z0-9.+-]+)*)?(;base64)?,[a-z0-9!$&',()*+;=\-._~:@/?%\s]*$`)
)

// IsAscii reports whether value consists of ASCII characters only.
func IsAscii(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// IsBase64 reports whether value is standard, padded base64.
func IsBase64(value string) bool {
	if value == "" || len(value)%4 != 0 {
		return false
	}
	return base64Regex.MatchString(value)
}

// IsDataURI reports whether value is an RFC 2397 data URI.
func IsDataURI(value string) bool {
	if value == "" {
		return false
	}
	return dataURIRegex.MatchString(strings.TrimSpace(value))
}

// IsEmail reports whether value is a single bare address with a dotted domain.
func IsEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Ann <ann@example.com>".
	if addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// IsURL reports whether value is an absolute URL with a host.
// A missing scheme is read as http, so "example.com/path" is accepted.
func IsURL(value string) bool {
	if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}

	raw := value
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	host := u.Hostname()
	if net.ParseIP(host) != nil {
		return true
	}
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return false
	}
	return true
}

// IsIP reports whether value is an IPv4 or IPv6 address.
func IsIP(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	return net.ParseIP(value) != nil
}

// IsMACAddress reports whether value is a MAC address in any format net.ParseMAC accepts.
func IsMACAddress(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	_, err := net.ParseMAC(value)
	return err == nil
}

// IsUUID reports whether value is a hyphenated UUID of any version.
func IsUUID(value string) bool {
	// Length and hyphen positions are checked before the more expensive parse.
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// IsJSON reports whether value is a JSON object or array.
// Bare JSON scalars such as "1" or "true" are rejected.
func IsJSON(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid([]byte(trimmed))
}
