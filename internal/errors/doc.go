// Package errors provides the structured error type used across rpg-savedata.
//
// Every error carries a Code, a caller-facing Message, an optional Cause and
// free-form Meta:
//
//	err := errors.NotFoundf("save block for unit %s not found", unitID).
//	    WithMeta("unit_id", unitID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store save block")
//	}
//
// WrapWithCode re-classifies a cause, which is how stream failures become
// CodeDataLoss:
//
//	return errors.WrapWithCode(err, errors.CodeDataLoss, "save block truncated")
//
// # Layer guidelines
//
// Stream and codec: return stream failures unchanged, never log.
//
// Repositories: NotFound for missing blocks, InvalidArgument for bad keys, wrap
// storage errors (Internal).
//
// Orchestrators: validate input, wrap repository and codec errors with context.
//
// Handlers: convert with ToGRPCError.
package errors
