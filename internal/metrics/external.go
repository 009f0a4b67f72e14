package metrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// UUID pattern for endpoint normalization
	uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
)

// RecordExternalAPICall records external API call metrics
func (m *Metrics) RecordExternalAPICall(endpoint, method string, statusCode int, duration time.Duration, err error) {
	m.safeExecute("RecordExternalAPICall", func() {
		endpoint = normalizeEndpoint(endpoint)
		status := strconv.Itoa(statusCode)

		m.ExternalAPIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		m.ExternalAPIRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())

		// Record errors for both network errors and HTTP error status codes
		if err != nil || statusCode >= 400 {
			errorType := getErrorType(statusCode, err)
			m.ExternalAPIErrors.WithLabelValues(endpoint, errorType).Inc()
		}
	})
}

// normalizeEndpoint converts actual IDs to templates
// Example: /api/users/123e4567-e89b-12d3-a456-426614174000 -> /api/users/{id}
func normalizeEndpoint(endpoint string) string {
	return uuidPattern.ReplaceAllString(endpoint, "{id}")
}

// getErrorType categorizes error types based on status code and error
func getErrorType(statusCode int, err error) string {
	// First, check HTTP status codes (most specific)
	switch {
	case statusCode == 400:
		return "bad_request"
	case statusCode == 401:
		return "unauthorized"
	case statusCode == 403:
		return "forbidden"
	case statusCode == 404:
		return "not_found"
	case statusCode == 408:
		return "request_timeout"
	case statusCode == 429:
		return "too_many_requests"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode == 500:
		return "internal_server_error"
	case statusCode == 502:
		return "bad_gateway"
	case statusCode == 503:
		return "service_unavailable"
	case statusCode == 504:
		return "gateway_timeout"
	case statusCode >= 500 && statusCode < 600:
		return "server_error"
	}

	// If no status code error, check network/connection errors
	if err != nil {
		errMsg := err.Error()

		// go-redis client and server replies
		switch {
		case strings.Contains(errMsg, "redis: client is closed"):
			return "redis_client_closed"
		case strings.Contains(errMsg, "redis: connection pool timeout"):
			return "redis_pool_timeout"
		case strings.Contains(errMsg, "NOAUTH"), strings.Contains(errMsg, "WRONGPASS"):
			return "redis_auth_error"
		case strings.Contains(errMsg, "READONLY"), strings.Contains(errMsg, "LOADING"):
			return "redis_unavailable"
		}

		// Network/connection errors
		if strings.Contains(errMsg, "connection refused") {
			return "connection_refused"
		}
		if strings.Contains(errMsg, "no such host") {
			return "dns_error"
		}
		if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
			return "timeout"
		}
		if strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset") {
			return "connection_reset"
		}
		if strings.Contains(errMsg, "TLS") || strings.Contains(errMsg, "certificate") {
			return "tls_error"
		}
		if strings.Contains(errMsg, "redis:") {
			return "redis_error"
		}

		return "network_error"
	}

	return "unknown"
}
