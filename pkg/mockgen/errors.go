// Error types and handling
package mockgen

// Error represents a standardized mock-generation error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return e.Message
}
