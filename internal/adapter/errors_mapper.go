package adapter

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	retryAfter := parseRetryAfter(resp.Header().Get("Retry-After"), time.Now())

	return NewTransportError(resp.StatusCode(), retryAfter, body)
}

// parseRetryAfter accepts both forms of the header: delay-seconds and
// HTTP-date. Anything unparsable or in the past yields 0.
func parseRetryAfter(value string, now time.Time) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}
		return seconds
	}

	at, err := http.ParseTime(value)
	if err != nil {
		return 0
	}
	wait := at.Sub(now).Seconds()
	if wait <= 0 {
		return 0
	}
	return int(math.Ceil(wait))
}
