package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, stdgorm.ErrRecordNotFound)
}

// HasDbIssues reports whether err is any database error at all, including
// the not-found sentinel. Callers that treat not-found as a distinct outcome
// should check IsNotFound first.
func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}
