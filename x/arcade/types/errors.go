package types

import errorsmod "cosmossdk.io/errors"

// x/arcade sentinel errors.
var (
	ErrInvalidRequest      = errorsmod.Register(ModuleName, 1, "invalid request")
	ErrUnauthorized        = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrInsufficientPayment = errorsmod.Register(ModuleName, 3, "insufficient payment")
	ErrValidation          = errorsmod.Register(ModuleName, 4, "validation failed")
	ErrStorage             = errorsmod.Register(ModuleName, 5, "storage failure")
	ErrNotInstantiated     = errorsmod.Register(ModuleName, 6, "arcade not instantiated")
	ErrAlreadyInstantiated = errorsmod.Register(ModuleName, 7, "arcade already instantiated")
	ErrGameCounterOverflow = errorsmod.Register(ModuleName, 8, "game counter overflow")
)
