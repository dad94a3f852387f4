package domain

import "testing"

func TestCoarseRoleFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want CoarseRole
	}{
		{role: "admin", want: CoarseAdministrator},
		{role: "org_admin", want: CoarseAdministrator},
		{role: "compliance_officer", want: CoarseMember},
		{role: "analyst", want: CoarseMember},
		{role: "member", want: CoarseMember},
		{role: "viewer", want: CoarseMember},
		{role: "superuser", want: CoarseMember},
		{role: "", want: CoarseMember},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			if got := CoarseRoleFor(tc.role); got != tc.want {
				t.Fatalf("CoarseRoleFor(%q) = %q, want %q", tc.role, got, tc.want)
			}
		})
	}
}

func TestPermissionsForRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want []string
	}{
		{role: "admin", want: []string{"read", "write", "delete", "manage_users", "manage_settings"}},
		{role: "compliance_officer", want: []string{"read", "write", "manage_breaches"}},
		{role: "viewer", want: []string{"read"}},
		{role: "no_such_role", want: []string{"read"}},
		{role: "", want: []string{"read"}},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			got := PermissionsForRole(tc.role)
			if len(got) != len(tc.want) {
				t.Fatalf("PermissionsForRole(%q) = %v, want %v", tc.role, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("PermissionsForRole(%q) = %v, want %v", tc.role, got, tc.want)
				}
			}
		})
	}
}

func TestPermissionsForRoleReturnsCopy(t *testing.T) {
	t.Parallel()

	first := PermissionsForRole("admin")
	first[0] = "mutated"
	if second := PermissionsForRole("admin"); second[0] != "read" {
		t.Fatalf("PermissionsForRole leaked internal slice: %v", second)
	}
}
