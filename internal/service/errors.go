package service

import (
	"errors"
)

const (
	BadRequest          = 400
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("invalid parameters")
	ErrMissingInput     = errors.New("Provide file or text")
	ErrFileNotSupported = errors.New("unsupported file type")
	ErrMailSend         = errors.New("Error sending email.")
	UnExpectedError     = errors.New("internal error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrMissingInput:     BadRequest,
	ErrFileNotSupported: BadRequest,
	ErrMailSend:         InternalServerError,
	UnExpectedError:     InternalServerError,
}

// StatusOf 按 ErrorMap 查找错误码，支持被包装的错误
func StatusOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return InternalServerError, false
}
