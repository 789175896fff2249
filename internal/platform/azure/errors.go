package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// isStatusCode checks if the error is an ARM response error with one of the
// given HTTP status codes.
func isStatusCode(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		for _, code := range codes {
			if respErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isStatusCode(err, http.StatusNotFound)
}

// IsConflict checks if an error indicates a conflict, typically a name that
// is already taken in the global namespace.
func IsConflict(err error) bool {
	return isStatusCode(err, http.StatusConflict)
}

// IsForbidden checks if an error indicates the caller lacks permission on
// the resource or subscription.
func IsForbidden(err error) bool {
	return isStatusCode(err, http.StatusForbidden)
}

// IsThrottled checks if an error indicates ARM rate limiting.
func IsThrottled(err error) bool {
	return isStatusCode(err, http.StatusTooManyRequests)
}
