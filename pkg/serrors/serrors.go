package serrors

import "fmt"

// Base is a coded error. The code is a stable machine-readable identifier
// surfaced in API payloads; the message is the English fallback text.
type Base struct {
	Code      string
	Message   string
	LocaleKey string
}

func (e *Base) Error() string {
	return e.Message
}

func NewError(code, message, localeKey string) *Base {
	return &Base{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

// WithDetail returns a new error that keeps the code of the base error but
// carries additional context in the message.
func (e *Base) WithDetail(format string, args ...any) *Base {
	return &Base{
		Code:      e.Code,
		Message:   fmt.Sprintf("%s: %s", e.Message, fmt.Sprintf(format, args...)),
		LocaleKey: e.LocaleKey,
	}
}

// Is reports code equality so wrapped coded errors match via errors.Is.
func (e *Base) Is(target error) bool {
	other, ok := target.(*Base)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

var (
	ErrUnauthorized = NewError("UNAUTHORIZED", "authentication required", "Errors.Unauthorized")
	ErrInternal     = NewError("INTERNAL", "internal error", "Errors.Internal")
)
