package retry

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// statusCoder is implemented by errors that carry an HTTP response status,
// such as repository.StatusError.
type statusCoder interface {
	HTTPStatus() int
}

// HTTPErrorClassifier implements ErrorClassifier for repository HTTP requests.
type HTTPErrorClassifier struct{}

// NewHTTPErrorClassifier creates a new HTTP error classifier.
func NewHTTPErrorClassifier() *HTTPErrorClassifier {
	return &HTTPErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *HTTPErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		return IsTransientStatus(sc.HTTPStatus())
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	if c.isNetworkError(err) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"connection refused",
		"connection reset",
		"i/o timeout",
		"tls handshake timeout",
		"server closed idle connection",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// IsTransientStatus reports whether an HTTP status is worth retrying.
func IsTransientStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (c *HTTPErrorClassifier) isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED) ||
			errors.Is(opErr.Err, syscall.ECONNRESET) ||
			errors.Is(opErr.Err, syscall.ENETUNREACH) ||
			errors.Is(opErr.Err, syscall.EHOSTUNREACH)
	}

	return false
}

var _ metsgen.ErrorClassifier = (*HTTPErrorClassifier)(nil)
