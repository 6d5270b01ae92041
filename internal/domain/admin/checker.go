package admin

// Can reports whether the permission is in the admin's effective set.
// A nil admin can do nothing.
func Can(a *Admin, p Permission) bool {
	if a == nil {
		return false
	}
	_, ok := EffectivePermissionSet(a)[p]
	return ok
}

// Cannot is the negation of Can.
func Cannot(a *Admin, p Permission) bool {
	return !Can(a, p)
}

// CanAny reports whether the effective set contains at least one of the
// given permissions. An empty list yields false.
func CanAny(a *Admin, perms []Permission) bool {
	if a == nil || len(perms) == 0 {
		return false
	}
	set := EffectivePermissionSet(a)
	for _, p := range perms {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// CanAll reports whether the effective set contains every one of the
// given permissions. An empty list is vacuously true, including for a nil
// admin.
func CanAll(a *Admin, perms []Permission) bool {
	if len(perms) == 0 {
		return true
	}
	if a == nil {
		return false
	}
	set := EffectivePermissionSet(a)
	for _, p := range perms {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}
