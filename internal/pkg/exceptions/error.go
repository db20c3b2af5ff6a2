package exceptions

import (
	"errors"
	"fmt"
	"revolucare-service/internal/pkg/constvars"
	"runtime"
)

// Condition strings are the stable, documented error kinds exposed to callers.
const (
	ConditionValidation       = "VALIDATION_ERROR"
	ConditionNotFound         = "NOT_FOUND"
	ConditionConflict         = "CONFLICT"
	ConditionUnauthorized     = "UNAUTHORIZED"
	ConditionInvalidState     = "INVALID_STATE"
	ConditionInsufficientData = "INSUFFICIENT_DATA"
	ConditionUpstreamService  = "UPSTREAM_SERVICE_ERROR"
	ConditionInternal         = "INTERNAL"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Condition     string   `json:"condition"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(statusCode int, condition, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Condition:     condition,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, statusCode int, condition, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Condition:     condition,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
	}
}

func BuildNewCustomError(err error, statusCode int, condition, clientMessage, devMessage string) *CustomError {
	if err != nil {
		return WrapWithError(err, statusCode, condition, clientMessage, devMessage)
	}
	return WrapWithoutError(statusCode, condition, clientMessage, devMessage)
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

func conditionIs(err error, condition string) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Condition == condition
	}
	return false
}

func IsValidation(err error) bool       { return conditionIs(err, ConditionValidation) }
func IsNotFound(err error) bool         { return conditionIs(err, ConditionNotFound) }
func IsConflict(err error) bool         { return conditionIs(err, ConditionConflict) }
func IsUnauthorized(err error) bool     { return conditionIs(err, ConditionUnauthorized) }
func IsInvalidState(err error) bool     { return conditionIs(err, ConditionInvalidState) }
func IsInsufficientData(err error) bool { return conditionIs(err, ConditionInsufficientData) }
func IsUpstreamService(err error) bool  { return conditionIs(err, ConditionUpstreamService) }
