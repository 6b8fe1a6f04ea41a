package errors

import "net/http"

// ErrorCode identifies a specific failure condition. Codes are grouped by
// module prefix so that logs and API payloads can be filtered per concern.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeDatabaseError      ErrorCode = "COMMON_007"
	ErrCodeCacheError         ErrorCode = "COMMON_008"
	ErrCodeCacheMiss          ErrorCode = "COMMON_009"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_010"
	ErrCodeTimeout            ErrorCode = "COMMON_011"

	// CodeOK is the code reported by GetCode for a nil error.
	CodeOK ErrorCode = "OK"
	// CodeUnknown is reported by GetCode when no AppError is in the chain.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Beneficiary module error codes.
const (
	ErrCodeBeneficiaryNotFound  ErrorCode = "BEN_001"
	ErrCodeBeneficiaryDuplicate ErrorCode = "BEN_002"
	ErrCodeCandidateUnknown     ErrorCode = "BEN_003"
)

// Allocation module error codes.
const (
	ErrCodeAllocationExceeded ErrorCode = "ALC_001"
	ErrCodePercentageInvalid  ErrorCode = "ALC_002"
)

// Asset module error codes.
const (
	ErrCodeAssetNotFound         ErrorCode = "AST_001"
	ErrCodeDebtMethodInvalid     ErrorCode = "AST_002"
	ErrCodeDebtMethodNotEligible ErrorCode = "AST_003"
)

// Profile / planning module error codes.
const (
	ErrCodeProfileNotFound ErrorCode = "PLN_001"
	ErrCodeRegimeInvalid   ErrorCode = "PLN_002"
)

// HTTPStatus maps an ErrorCode to the HTTP status the interface layer should
// respond with. Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case ErrCodeBadRequest, ErrCodeValidation, ErrCodePercentageInvalid,
		ErrCodeDebtMethodInvalid, ErrCodeDebtMethodNotEligible, ErrCodeRegimeInvalid:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeBeneficiaryNotFound, ErrCodeCandidateUnknown,
		ErrCodeAssetNotFound, ErrCodeProfileNotFound, ErrCodeCacheMiss:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeBeneficiaryDuplicate:
		return http.StatusConflict
	case ErrCodeAllocationExceeded:
		return http.StatusUnprocessableEntity
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
