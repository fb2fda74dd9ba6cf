package user

import (
	"testing"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.Can(CapManageEvents))
	assert.True(t, RoleAdmin.Can(CapManageUsers))
	assert.False(t, RoleAdmin.Can(CapRegister))

	assert.True(t, RoleStudent.Can(CapRegister))
	assert.True(t, RoleStudent.Can(CapViewEvents))
	assert.False(t, RoleStudent.Can(CapManageEvents))
	assert.False(t, RoleStudent.Can(CapViewReports))

	assert.False(t, Role("lecturer").Can(CapViewEvents))
	assert.False(t, Role("lecturer").IsValid())
}

func TestAddStudent(t *testing.T) {
	users := []User{{Username: "admin", Password: "admin123", FullName: "Admin", Role: RoleAdmin}}

	out, u, err := AddStudent(users, CreateStudentRequest{Username: " jane ", Password: " pw ", FullName: " Jane Doe "})
	require.NoError(t, err)
	assert.Equal(t, User{Username: "jane", Password: "pw", FullName: "Jane Doe", Role: RoleStudent}, u)
	require.Len(t, out, 2)
	assert.Equal(t, u, out[1])
	assert.Len(t, users, 1)

	_, _, err = AddStudent(out, CreateStudentRequest{Username: "jane", Password: "x", FullName: "Other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	_, _, err = AddStudent(out, CreateStudentRequest{Username: "  ", Password: " ", FullName: ""})
	assert.ErrorIs(t, err, ErrUsernameRequired)
	assert.ErrorIs(t, err, ErrPasswordRequired)
	assert.ErrorIs(t, err, ErrFullNameRequired)
}
