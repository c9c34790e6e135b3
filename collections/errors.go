package collections

import "github.com/hasbyte1/go-usefull/internal/errs"

// Sentinel errors returned by collection operations.
var (
	// ErrInvalidArgument is the error kind shared by every package of this
	// module. All sentinels below match it with errors.Is.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errs.Invalid("collections: chunk size must be greater than 0")
)
