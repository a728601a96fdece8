package errors

import "fmt"

// ErrorMessage is the coded payload shared by client and server errors.
type ErrorMessage struct {
	Code        string `json:"error_code"`
	Message     string `json:"error_message"`
	Description string `json:"error_description,omitempty"`
}

// ClientError is an error caused by the caller, mapped to a 4xx status.
type ClientError struct {
	ErrorMessage
	StatusCode int
}

// ServerError wraps an upstream or internal failure, mapped to a 500 status.
type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// NewClientErrorWithDescription overrides the description of a coded message,
// keeping the code and message intact.
func NewClientErrorWithDescription(msg ErrorMessage, description string, code int) *ClientError {
	msg.Description = description
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}
