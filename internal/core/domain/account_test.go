package domain

import "testing"

func TestRole_CanManage(t *testing.T) {
	cases := []struct {
		caller Role
		target Role
		want   bool
	}{
		{RoleSuperadmin, RoleAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleSuperadmin, RoleUser, false},
		{RoleAdmin, RoleAdmin, false},
		{RoleUser, RoleUser, false},
		{RoleUser, RoleAdmin, false},
	}
	for _, tc := range cases {
		if got := tc.caller.CanManage(tc.target); got != tc.want {
			t.Errorf("%s.CanManage(%s) = %v, want %v", tc.caller, tc.target, got, tc.want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleSuperadmin, RoleAdmin, RoleUser} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("guest").Valid() {
		t.Errorf("expected guest to be invalid")
	}
}
