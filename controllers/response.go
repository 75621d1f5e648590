package controllers

// Response is the uniform envelope every /api endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// OK builds a success envelope.
func OK(data interface{}, message string) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope.
func Fail(message string, errs ...string) Response {
	return Response{Success: false, Message: message, Errors: errs}
}
