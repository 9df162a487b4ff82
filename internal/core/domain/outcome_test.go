package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownCodes(t *testing.T) {
	tests := []struct {
		code     int
		category OutcomeCategory
		message  string
	}{
		{200, CategorySuccess200, "The request has succeeded."},
		{204, CategorySuccess204, "The request has been successfully processed, but there is no additional content."},
		{400, CategoryBadRequest400, "A problem has occurred reading or understanding the request."},
		{401, CategoryUnauthorized401, "Authentication required. Check the details are correct."},
		{403, CategoryForbidden403, "Insufficient permissions to process the request."},
		{422, CategoryValidationError422, "A request validation error."},
		{500, CategoryServerError500, "The server could not process the request."},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			category, message := Classify(tt.code)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestClassify_UnknownCodes(t *testing.T) {
	known := map[int]bool{200: true, 204: true, 400: true, 401: true, 403: true, 422: true, 500: true}

	for code := -1; code <= 1000; code++ {
		if known[code] {
			continue
		}
		category, message := Classify(code)
		if category != CategoryUnknown {
			t.Fatalf("code %d: expected unknown, got %s", code, category)
		}
		assert.Equal(t, "Uh oh, speak to a developer.", message)
	}
}

func TestClassify_Stable(t *testing.T) {
	for _, code := range []int{200, 201, 422, 999} {
		c1, m1 := Classify(code)
		c2, m2 := Classify(code)
		assert.Equal(t, c1, c2)
		assert.Equal(t, m1, m2)
	}
}

func TestClassify_NeverReturnsFailureCategories(t *testing.T) {
	for code := 0; code < 600; code++ {
		category, _ := Classify(code)
		assert.True(t, category.HasStatus(), "code %d", code)
	}
}

func TestOutcomeCategory_IsSuccess(t *testing.T) {
	assert.True(t, CategorySuccess200.IsSuccess())
	assert.True(t, CategorySuccess204.IsSuccess())
	assert.False(t, CategoryValidationError422.IsSuccess())
	assert.False(t, CategoryUnknown.IsSuccess())
	assert.False(t, CategoryTransportFailure.IsSuccess())
}

func TestNewStatusOutcome(t *testing.T) {
	o := NewStatusOutcome(OperationAdd, 422, "https://a.test", "1")

	assert.Equal(t, OperationAdd, o.Operation)
	assert.Equal(t, 422, o.StatusCode)
	assert.Equal(t, CategoryValidationError422, o.Category)
	assert.Equal(t, "A request validation error.", o.Message)
	assert.Equal(t, "https://a.test", o.Subject)
	assert.Equal(t, "1", o.StoreID)
	assert.False(t, o.Succeeded())
}

func TestNewFailureOutcome(t *testing.T) {
	cause := errors.New("connection refused")
	o := NewFailureOutcome(OperationRemove, CategoryTransportFailure, cause, "https://a.test", "2")

	assert.Equal(t, 0, o.StatusCode)
	assert.Equal(t, CategoryTransportFailure, o.Category)
	assert.Equal(t, "The request could not be sent to Adyen.", o.Message)
	assert.ErrorIs(t, o.Err, cause)
	assert.False(t, o.Category.HasStatus())
}

func TestNewFailureOutcome_ConfigFailure(t *testing.T) {
	o := NewFailureOutcome(OperationList, CategoryConfigFailure, ErrDecrypt, "", "")

	assert.Equal(t, "Adyen credentials could not be resolved.", o.Message)
	assert.False(t, o.Category.HasStatus())
	assert.False(t, o.Succeeded())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := error(&TransportError{Op: "GET", URL: "https://x.test/a", Err: cause})

	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "GET https://x.test/a: dial tcp: timeout", err.Error())
	assert.False(t, IsTransportError(cause))
}
