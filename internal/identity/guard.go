package identity

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("you are not authorized to access this resource")
)

// CheckOwner verifies that the propagated identity owns the resource.
// Handlers call it after fetching a resource and before returning or
// mutating it. The zero Identity counts as unauthenticated.
func CheckOwner(ownerID int64, ident Identity) error {
	if ident.UserID == 0 {
		return ErrUnauthenticated
	}
	if ownerID != ident.UserID {
		return ErrForbidden
	}
	return nil
}
