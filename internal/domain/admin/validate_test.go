package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		AuthID:   "auth_xyz",
		Email:    "staff@example.com",
		Name:     "Staff Member",
		Role:     string(RoleSalesAdmin),
		IsActive: true,
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	assert.Empty(t, ValidateRecord(validRecord()))

	rec := validRecord()
	rec.Permissions = []string{string(PermOrdersView), string(PermUsersView)}
	assert.Empty(t, ValidateRecord(rec))
}

func TestValidateRecord_CollectsAllProblems(t *testing.T) {
	rec := Record{
		AuthID:      "",
		Email:       "not-an-email",
		Name:        "x",
		Role:        "intern",
		Permissions: []string{"orders.fly", string(PermOrdersView)},
	}

	problems := ValidateRecord(rec)
	require.Len(t, problems, 5)
	assert.Contains(t, problems, "auth_id is required")
	assert.Contains(t, problems, `email "not-an-email" is malformed`)
	assert.Contains(t, problems, "name must be at least 2 characters")
	assert.Contains(t, problems, `unknown role "intern"`)
	assert.Contains(t, problems, `unknown permission "orders.fly"`)
}

func TestValidateRecord_MissingEmail(t *testing.T) {
	rec := validRecord()
	rec.Email = "  "
	problems := ValidateRecord(rec)
	require.Len(t, problems, 1)
	assert.Equal(t, "email is required", problems[0])
}

func TestPermissionsStringConversion(t *testing.T) {
	perms := []Permission{PermOrdersView, PermUsersView}
	raw := PermissionsToStrings(perms)
	assert.Equal(t, []string{"orders.view", "users.view"}, raw)
	assert.Equal(t, perms, PermissionsFromStrings(raw))

	assert.Nil(t, PermissionsToStrings(nil))
	assert.Nil(t, PermissionsFromStrings(nil))
	assert.Nil(t, PermissionsFromStrings([]string{}))
}
