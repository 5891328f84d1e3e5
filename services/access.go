// services/access.go
package services

import (
	"github.com/google/uuid"
)

// Caller identifies the authenticated user for a single request. It is
// threaded explicitly into every service call instead of living in ambient
// session state, so the policy checks stay pure.
type Caller struct {
	UserID uuid.UUID
	Role   string // models.RoleAdmin | models.RoleStaff

	// OutletID is nil for admins, who are unscoped.
	OutletID *uuid.UUID
}

func (c Caller) IsAdmin() bool {
	return c.Role == "admin"
}

// CanAccess reports whether the caller may read or write rows belonging to
// the given outlet.
func (c Caller) CanAccess(outletID uuid.UUID) bool {
	if c.IsAdmin() {
		return true
	}
	return c.OutletID != nil && *c.OutletID == outletID
}

// CanWriteRate reports whether the caller may set item rates. Staff-created
// items always get rate 0, whatever the client sent.
func (c Caller) CanWriteRate() bool {
	return c.IsAdmin()
}

// CanDelete covers customer and invoice deletion, both admin-only.
func (c Caller) CanDelete() bool {
	return c.IsAdmin()
}
