// Error types and handling
package slackmock

// Error represents a standardized mock-client error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return e.Message
}
