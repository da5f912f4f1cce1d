package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ustva/internal/domain"
)

// APIError is the structured error body returned for failed requests.
// Success bodies are not enveloped; their shapes are part of the API
// contract consumed by the back-office frontend.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"error": APIError{Code: code, Message: msg}})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriodCode):
		return http.StatusBadRequest, "INVALID_PERIOD_CODE", "invalid period code; allowed: 01-12 or 41-44"
	case errors.Is(err, domain.ErrUnknownClient):
		return http.StatusNotFound, "UNKNOWN_CLIENT", "client does not exist"
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, "REPORT_NOT_FOUND", "vat report not found"
	case errors.Is(err, domain.ErrDuplicateCompanyName):
		return http.StatusConflict, "DUPLICATE_COMPANY_NAME", "company name already exists"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
