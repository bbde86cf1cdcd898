// Package errors provides structured error handling for the party-api project.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("session not found")
//	err := errors.InvalidArgumentf("invalid no-repeat window: %d", n)
//
// Adding metadata:
//
//	err := errors.NotFound("session not found").
//	    WithMeta("session_id", sessionID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get session")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // fall back to defaults
//	}
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.SessionRepo == nil {
//	    vb.RequiredField("SessionRepo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
package errors
