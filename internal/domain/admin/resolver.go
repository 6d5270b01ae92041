package admin

// EffectivePermissions computes the permission set actually in force for
// an admin. This is the single place the precedence rules live; callers
// must not reimplement them.
//
// Precedence, in order:
//  1. nil or inactive admin: no permissions. The active check runs before
//     the super admin check, so a deactivated super admin holds nothing.
//  2. super_admin: the full catalog, regardless of stored overrides.
//  3. non-empty override list: the overrides verbatim. They replace the
//     role defaults entirely and are not validated against them.
//  4. otherwise: the role's static default list.
//
// An empty override list is indistinguishable from no override and falls
// through to the role defaults.
func EffectivePermissions(a *Admin) []Permission {
	if a == nil || !a.isActive {
		return []Permission{}
	}

	if a.role.IsSuper() {
		return AllPermissions()
	}

	if a.HasOverrides() {
		return a.PermissionOverrides()
	}

	return DefaultPermissions(a.role)
}

// EffectivePermissionSet is EffectivePermissions as a membership map, for
// callers doing repeated lookups.
func EffectivePermissionSet(a *Admin) map[Permission]struct{} {
	perms := EffectivePermissions(a)
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}
