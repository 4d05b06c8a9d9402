package models

import "testing"

func TestRoleIsValid(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleServiceProvider, true},
		{RoleCustomer, true},
		{Role("MODERATOR"), false},
		{Role("customer"), false},
		{Role(""), false},
	}
	for _, tc := range cases {
		if got := tc.role.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestRoleSelectable(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleCustomer, true},
		{RoleServiceProvider, true},
		{RoleAdmin, false},
		{Role("SUPERUSER"), false},
		{Role(""), false},
	}
	for _, tc := range cases {
		if got := tc.role.Selectable(); got != tc.want {
			t.Errorf("Selectable(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
