package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details string       `json:"details,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failing field in a request payload.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Standard error codes for API responses
const (
	ErrCodeProdutoNotFound = "PRODUTO_NOT_FOUND"
	ErrCodeNoProdutos      = "NO_PRODUTOS"
)

// DomainError carries a stable machine-readable code alongside the message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProdutoNotFound = NewDomainError(ErrCodeProdutoNotFound, "produto not found")
	ErrNoProdutos      = NewDomainError(ErrCodeNoProdutos, "no produtos found")
)
