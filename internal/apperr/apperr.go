// Package apperr 业务层统一错误种类，handler 层据此映射状态码
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("not enough permissions")
	ErrValidation    = errors.New("validation failed")
	ErrAlreadyMember = errors.New("already a member of this community")
	ErrNotMember     = errors.New("not a member of this community")
)

// Validationf 带原因的校验错误，errors.Is(err, ErrValidation) 成立
func Validationf(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }
