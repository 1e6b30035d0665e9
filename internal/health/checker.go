package health

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	userAgent    = "sitehealth/1.0"
	maxRedirects = 10
)

var errTooManyRedirects = errors.New("redirect chain too long")

// HTTPChecker performs the full per-target check: HTTP probe plus, for
// https targets, a certificate inspection. It holds one connection pool
// shared by all checks and is safe for concurrent use.
type HTTPChecker struct {
	follow   *http.Client
	terminal *http.Client
	inspect  func(hostname string, port int) SSLInfo
}

func NewHTTPChecker() *HTTPChecker {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPChecker{
		follow: &http.Client{
			Transport: tr,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errTooManyRedirects
				}
				return nil
			},
		},
		terminal: &http.Client{
			Transport: tr,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		inspect: InspectCertificate,
	}
}

// Close releases idle pooled connections.
func (c *HTTPChecker) Close() {
	c.follow.CloseIdleConnections()
}

// Check runs one health check. Every failure mode is folded into the
// returned CheckResult; it never returns an error or panics.
func (c *HTTPChecker) Check(ctx context.Context, target string, opts Options) CheckResult {
	res := CheckResult{URL: target, FinalURL: target}

	if !ValidURL(target) {
		res.Error = strPtr("Invalid URL format")
		return res
	}

	now := time.Now().UTC()
	res.Timestamp = &now

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, target, nil)
	if err != nil {
		res.Error = strPtr("Request Error: " + err.Error())
		return res
	}
	req.Header.Set("User-Agent", userAgent)

	client := c.follow
	if !opts.FollowRedirects {
		client = c.terminal
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		c.classify(&res, err, timeout)
		if res.SSLChecked {
			// The request died at the TLS layer. Inspect the certificate
			// anyway so an expired or otherwise rejected certificate still
			// reports its expiry; validity stays false.
			if host, port, ok := httpsHostPort(target); ok {
				info := c.inspect(host, port)
				res.SSLExpiry = info.Expiry
				res.SSLDaysUntilExpiry = info.DaysUntilExpiry
			}
		}
		return res
	}
	// Download the body so response_time covers the full payload, the
	// way a browser-visible load would.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	elapsed := time.Since(start).Seconds()
	res.ResponseTime = &elapsed
	code := resp.StatusCode
	res.StatusCode = &code
	res.StatusHealthy = code >= 200 && code < 400
	res.FinalURL = resp.Request.URL.String()

	if host, port, ok := httpsHostPort(res.FinalURL); ok {
		info := c.inspect(host, port)
		res.SSLChecked = info.Checked
		res.SSLValid = info.Valid
		res.SSLExpiry = info.Expiry
		res.SSLDaysUntilExpiry = info.DaysUntilExpiry
	}
	return res
}

// classify maps a transport error onto the result's error field. TLS
// failures during the request additionally mark the SSL fields so a
// bad certificate is visible in the result, not just the error text.
func (c *HTTPChecker) classify(res *CheckResult, err error, timeout time.Duration) {
	switch {
	case errors.Is(err, errTooManyRedirects):
		res.Error = strPtr("Too Many Redirects: the request exceeded the maximum number of redirects")
	case isTLSError(err):
		res.Error = strPtr("SSL Error: " + err.Error())
		res.SSLChecked = true
		res.SSLValid = false
	case isTimeout(err):
		res.Error = strPtr(fmt.Sprintf("Timeout Error: request took longer than %g seconds", timeout.Seconds()))
	case isConnectionError(err):
		res.Error = strPtr("Connection Error: " + err.Error())
	default:
		var ue *url.Error
		if errors.As(err, &ue) {
			res.Error = strPtr("Request Error: " + err.Error())
		} else {
			res.Error = strPtr("Unexpected Error: " + err.Error())
		}
	}
}

// httpsHostPort extracts hostname and port (default 443) from raw when
// its scheme is https.
func httpsHostPort(raw string) (string, int, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return "", 0, false
	}
	port := 443
	if p := u.Port(); p != "" {
		if n, perr := strconv.Atoi(p); perr == nil {
			port = n
		}
	}
	return u.Hostname(), port, true
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isTLSError(err error) bool {
	var (
		certErr   *tls.CertificateVerificationError
		recErr    tls.RecordHeaderError
		authErr   x509.UnknownAuthorityError
		hostErr   x509.HostnameError
		certInval x509.CertificateInvalidError
	)
	return errors.As(err, &certErr) ||
		errors.As(err, &recErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &certInval)
}

func isConnectionError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func strPtr(s string) *string { return &s }
