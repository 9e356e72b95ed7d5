// Package guard provides the constructor guard pattern used by value objects,
// entities, commands and queries across the application.
//
// A ConstructorGuard embedded in a struct records whether the struct was built
// through its designated constructor. Zero-value instances fail validation,
// which lets domain code reject objects that bypassed invariant checks.
package guard

import "errors"

// ErrNotConstructed is the fallback error returned by Validate when the caller
// does not supply a more specific one.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; the zero value reports the object as not constructed.
//
// Example:
//
//	type Money struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or ErrNotConstructed
// when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrNotConstructed
	}

	return notConstructedErr
}
