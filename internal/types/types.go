// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, services, storage and utils can all import types without
// depending on each other.
package types

// Student represents a student record in our system.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  controls how the field appears when encoded to JSON
//     (lowercase names match REST API conventions).
//
//  2. validate:"..." rules checked by the go-playground/validator
//     package (see internal/validation). "required" rejects empty strings,
//     "email" rejects anything that is not shaped like an address.
//
// ID is assigned by the store on insert and never changes afterwards, so
// it carries no validation rule: clients omit it on create and update.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required,email"`
	Gender string `json:"gender" validate:"required"`
}

// Teacher mirrors Student. Teachers can only be created for now.
type Teacher struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required,email"`
	Gender string `json:"gender" validate:"required"`
}
