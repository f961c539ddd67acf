package util

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("Unable to log in with provided credentials.")
	ErrWrongPassword       = errors.New("Wrong password.")
	ErrInvalidResetToken   = errors.New("Invalid token")
	ErrInvalidResetUser    = errors.New("Invalid user")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrStatusParamRequired = errors.New("Status parameter is required")
)

// FieldErrors 字段名 -> 错误信息列表，字段名与 JSON 字段一致
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e[k], " "))
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Add(field, message string) FieldErrors {
	e[field] = append(e[field], message)
	return e
}

func (e FieldErrors) Merge(other FieldErrors) FieldErrors {
	for k, msgs := range other {
		e[k] = append(e[k], msgs...)
	}
	return e
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// OrNil 无错误时返回 nil，避免返回非空接口
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func NewFieldError(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

// InvalidPK 关联对象不存在
func InvalidPK(field string, id uint) FieldErrors {
	return NewFieldError(field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

// UniqueTogether 联合唯一约束冲突
func UniqueTogether(fields ...string) FieldErrors {
	return NewFieldError("non_field_errors", fmt.Sprintf("The fields %s must make a unique set.", strings.Join(fields, ", ")))
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
