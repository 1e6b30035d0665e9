package health

import "net/url"

// ValidURL reports whether raw parses as a URL with both a scheme and a
// host. It never panics; any parse failure is simply false.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
