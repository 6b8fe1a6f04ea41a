package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_And_Error(t *testing.T) {
	err := New(ErrCodeBeneficiaryNotFound, "beneficiary not found")
	assert.Equal(t, ErrCodeBeneficiaryNotFound, err.Code)
	assert.Equal(t, "[BEN_001] beneficiary not found", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWithDetail(t *testing.T) {
	base := New(ErrCodeAllocationExceeded, "allocation total exceeds 100%")
	detailed := base.WithDetail("total=120")
	assert.Equal(t, "[ALC_001] allocation total exceeds 100%: total=120", detailed.Error())
	// Original is not mutated.
	assert.Empty(t, base.Detail)

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("x"))
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrCodeDatabaseError, "failed to save allocations")
	assert.Equal(t, ErrCodeDatabaseError, err.Code)
	assert.True(t, stderrors.Is(err, cause))

	assert.Nil(t, Wrap(nil, ErrCodeDatabaseError, "ignored"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	inner := New(ErrCodeBeneficiaryDuplicate, "already elected")
	outer := Wrap(inner, CodeUnknown, "add family candidate")
	assert.Equal(t, ErrCodeBeneficiaryDuplicate, outer.Code)
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(ErrCodeAllocationExceeded, "over 100")
	mid := fmt.Errorf("saving: %w", inner)
	outer := Wrap(mid, ErrCodeInternal, "request failed")

	assert.True(t, IsCode(outer, ErrCodeAllocationExceeded))
	assert.False(t, IsCode(outer, ErrCodeBeneficiaryNotFound))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeBeneficiaryNotFound, "gone")))
	assert.True(t, IsNotFound(New(ErrCodeProfileNotFound, "gone")))
	assert.False(t, IsNotFound(New(ErrCodeConflict, "dup")))
	assert.False(t, IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeCacheMiss, GetCode(New(ErrCodeCacheMiss, "miss")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, ErrCodeBeneficiaryDuplicate.HTTPStatus())
	assert.Equal(t, http.StatusUnprocessableEntity, ErrCodeAllocationExceeded.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrCodeBeneficiaryNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrCodeValidation.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrCodeInternal.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrorCode("nope").HTTPStatus())
}
