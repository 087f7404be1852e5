package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"invalid state", ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{"unauthorized", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"token revoked", ErrCodeTokenRevoked, http.StatusUnauthorized},
		{"conflict", ErrCodeConflict, http.StatusConflict},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code defaults to 500", "SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"mapped directly", "NOT_FOUND", ErrCodeNotFound},
		{"budget not found by suffix", "BUDGET_NOT_FOUND", ErrCodeNotFound},
		{"contact not found by suffix", "CONTACT_NOT_FOUND", ErrCodeNotFound},
		{"bank account not found by suffix", "BANK_ACCOUNT_NOT_FOUND", ErrCodeNotFound},
		{"invalid amount", "INVALID_AMOUNT", ErrCodeValidation},
		{"invalid days is a range error", "INVALID_DAYS", ErrCodeValidationRange},
		{"invalid prefix convention", "INVALID_INSTALLMENT", ErrCodeValidation},
		{"invalid state", "INVALID_STATE", ErrCodeInvalidState},
		{"client required", "CLIENT_REQUIRED", ErrCodeBusinessRule},
		{"already normalized passes through", ErrCodeTokenExpired, ErrCodeTokenExpired},
		{"unknown domain rule folds to business rule", "SETTLEMENT_LOCKED", ErrCodeBusinessRule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNormalizedDomainCodesResolveToClientErrors(t *testing.T) {
	// every code the services raise must land on a 4xx, never a 500
	domainCodes := []string{
		"ACCOUNT_NOT_FOUND", "INSTALLMENT_NOT_FOUND", "BUDGET_NOT_FOUND",
		"CONTACT_NOT_FOUND", "CATEGORY_NOT_FOUND", "DEPARTMENT_NOT_FOUND",
		"BANK_ACCOUNT_NOT_FOUND", "INVALID_AMOUNT", "INVALID_DATE",
		"INVALID_DAYS", "INVALID_STATUS", "INVALID_KIND", "INVALID_STATE",
		"CLIENT_REQUIRED",
	}
	for _, code := range domainCodes {
		status := GetHTTPStatus(NormalizeErrorCode(code))
		assert.GreaterOrEqual(t, status, 400, "code %s", code)
		assert.Less(t, status, 500, "code %s", code)
	}
}
