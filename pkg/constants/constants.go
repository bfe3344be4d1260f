package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	AppKey       ContextKey = "app"
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	LoggerKey    ContextKey = "logger"
	RequestStart ContextKey = "requestStart"
)

// Validate is the shared validator instance. DTOs use it through their Ok
// methods so every struct is validated with the same tag set.
var Validate = validator.New(validator.WithRequiredStructEnabled())
