package constants

const (
	ErrCodeValidation         = "VALIDATION"
	ErrCodeInsufficientPoints = "INSUFFICIENT_POINTS"
	ErrCodeUsernameTaken      = "USERNAME_TAKEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeRewardNotFound     = "REWARD_NOT_FOUND"
	ErrCodeOperationFailed    = "OPERATION_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgValidation         = "Invalid request body"
	ErrMsgInsufficientPoints = "Insufficient points"
	ErrMsgUsernameTaken      = "Username already exists"
	ErrMsgInvalidCredentials = "Invalid credentials"
	ErrMsgUnauthorized       = "Invalid token"
	ErrMsgForbidden          = "Admin access required"
	ErrMsgUserNotFound       = "User not found"
	ErrMsgRewardNotFound     = "Reward not found"
	ErrMsgInternalError      = "Server error"
)

var errorMessages = map[string]string{
	ErrCodeValidation:         ErrMsgValidation,
	ErrCodeInsufficientPoints: ErrMsgInsufficientPoints,
	ErrCodeUsernameTaken:      ErrMsgUsernameTaken,
	ErrCodeInvalidCredentials: ErrMsgInvalidCredentials,
	ErrCodeUnauthorized:       ErrMsgUnauthorized,
	ErrCodeForbidden:          ErrMsgForbidden,
	ErrCodeUserNotFound:       ErrMsgUserNotFound,
	ErrCodeRewardNotFound:     ErrMsgRewardNotFound,
	ErrCodeOperationFailed:    ErrMsgInternalError,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidation, ErrCodeInsufficientPoints, ErrCodeUsernameTaken, ErrCodeInvalidCredentials:
		return 400
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeForbidden:
		return 403
	case ErrCodeUserNotFound, ErrCodeRewardNotFound:
		return 404
	default:
		return 500
	}
}
