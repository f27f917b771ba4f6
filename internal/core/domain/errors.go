package domain

import "errors"

// Failure taxonomy. Nothing here is fatal to the process: every error below
// degrades to an empty result, a denial message, or a discarded record.
var (
	// ErrCatalogLoad wraps network or parse failures fetching the catalog
	// document. Callers render an empty or error state.
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrCorruptRecord wraps a decode failure on persisted JSON. Callers
	// decide on recovery; it is never coerced silently.
	ErrCorruptRecord = errors.New("corrupt stored record")

	// ErrInvalidCredentials is returned on any login mismatch. It carries no
	// detail on whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPermissionDenied means the caller is authenticated but the role does
	// not grant the required permission. The operation aborts before any
	// mutation.
	ErrPermissionDenied = errors.New("permission denied")

	ErrListingNotFound  = errors.New("listing not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse refuses deletion of a category that still has
	// listings counted against it.
	ErrCategoryInUse = errors.New("category still has products")
)
