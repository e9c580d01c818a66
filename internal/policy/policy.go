// Package policy holds the authorization checks gating mutating and
// sensitive-read operations: ownership for pictures, the admin role for user
// management. The legacy mode waives every check for any authenticated
// requester, matching the deliberately vulnerable training deployment.
package policy

import "github.com/pixiapp/pixi-go/internal/model"

type Policy struct {
	legacy bool
}

// New returns an enforcing policy; legacy true disables all checks.
func New(legacy bool) *Policy {
	return &Policy{legacy: legacy}
}

// CanDeletePicture allows the picture's creator or an admin.
func (p *Policy) CanDeletePicture(requester *model.User, pic *model.Picture) bool {
	if p.legacy {
		return true
	}
	return requester.IsAdmin || requester.ID == pic.CreatorID
}

// CanManageUsers gates the admin routes: listing all users and deleting
// accounts.
func (p *Policy) CanManageUsers(requester *model.User) bool {
	if p.legacy {
		return true
	}
	return requester.IsAdmin
}

// CanSetAdmin gates changes to the is_admin flag, both at registration and
// on profile edits.
func (p *Policy) CanSetAdmin(requester *model.User) bool {
	if p.legacy {
		return true
	}
	return requester != nil && requester.IsAdmin
}
