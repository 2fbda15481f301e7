// Package validation provides request validation: a fluent Validator for
// hand-rolled field checks and a tag-driven struct validator backed by
// go-playground/validator. Both produce *errors.AppError values so handlers
// can respond uniformly.
package validation
