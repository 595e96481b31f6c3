package ports

import (
	"context"
)

// DirectoryUser is a user record returned by the external user directory.
type DirectoryUser struct {
	ID       string
	UserName string
	FullName string
	Location string
}

// UserDirectory is the contract for the external identity-provider service.
// The core workflows never call it; orchestration outside the core uses it to
// resolve user display names and to translate a name search into the set of
// matching user IDs fed to the query filters.
type UserDirectory interface {
	// ListUsers retrieves every user visible to the given credential.
	ListUsers(ctx context.Context, credential string) ([]DirectoryUser, error)
}
