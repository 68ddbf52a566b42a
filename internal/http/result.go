package httpapi

import "github.com/mueed25/new-nahcon/internal/models"

// Result is the standard success envelope: {success:true, data:...}.
type Result[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// ListResult adds the pagination block used by the contact list endpoint.
type ListResult[T any] struct {
	Success    bool              `json:"success"`
	Data       T                 `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

func OkList[T any](data T, p models.Pagination) ListResult[T] {
	return ListResult[T]{Success: true, Data: data, Pagination: p}
}

// ErrorResult is the error envelope: {success:false, error:...}.
// Message carries failure detail and is only populated outside production.
type ErrorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func Fail(errMsg string) ErrorResult {
	return ErrorResult{Success: false, Error: errMsg}
}

func FailWithDetail(errMsg, detail string) ErrorResult {
	return ErrorResult{Success: false, Error: errMsg, Message: detail}
}
