package constants

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance. DTOs are validated through this
// single instance so custom validations are registered in one place.
var Validate = validator.New()

type ContextKey string

const (
	AppKey       ContextKey = "app"
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	ParamsKey    ContextKey = "params"
	LoggerKey    ContextKey = "logger"
	UserKey      ContextKey = "user"
	SessionKey   ContextKey = "session"
	LocalizerKey ContextKey = "localizer"
)
