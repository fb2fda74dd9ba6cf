package auth

import (
	"fmt"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/domain/user"
)

// Identity is the role-tagged result of a successful login. It lives for
// one session only and is never persisted.
type Identity struct {
	SessionID string
	Username  string
	FullName  string
	Role      user.Role
}

func (id Identity) IsAdmin() bool { return id.Role == user.RoleAdmin }

// Require fails with a Forbidden error unless the identity's role grants c.
func Require(id Identity, c user.Capability) error {
	if id.Username == "" || !id.Role.Can(c) {
		return fmt.Errorf("%w: %s may not %s", apperr.ErrForbidden, roleOrAnon(id), c)
	}
	return nil
}

func roleOrAnon(id Identity) string {
	if id.Username == "" {
		return "anonymous"
	}
	return string(id.Role)
}
