// Package errs provides the standardized error types shared by every layer
// of the application.
//
// The package covers the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value does not satisfy its constraints
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a requested object does not exist
//   - ConflictError: a write lost to a concurrent change or duplicate
//   - UnauthorizedError: the actor lacks the capability for an action
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrValueIsRequired) for errors.Is classification, a struct type
// carrying the details, constructor functions with and without a cause,
// and Error/Unwrap methods so wrapped causes stay reachable.
//
// HTTP and persistence adapters rely on the sentinels to translate
// failures into status codes without inspecting messages.
package errs
