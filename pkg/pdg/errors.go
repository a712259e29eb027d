package pdg

import "errors"

var (
	// Lookup errors 🔎
	ErrUnknownCode  = errors.New("❌ unknown particle code")
	ErrUnknownName  = errors.New("❌ unknown particle name")
	ErrInvalidQuery = errors.New("❌ invalid particle query")
)
