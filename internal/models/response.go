package models

// Error codes carried in failed responses
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Response is the envelope every API route answers with
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Success wraps data in a successful envelope
func Success(data any) Response {
	return Response{Success: true, Data: data}
}

// Failure builds a failed envelope
func Failure(message, code string) Response {
	return Response{Success: false, Error: &ErrorBody{Message: message, Code: code}}
}
