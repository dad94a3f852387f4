package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrgType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want OrgType
	}{
		{in: "law_firm", want: OrgTypeLawFirm},
		{in: "enterprise", want: OrgTypeEnterprise},
		{in: "channel_partner", want: OrgTypeChannelPartner},
		{in: "government", want: OrgTypeGovernment},
		{in: "nonprofit", want: OrgTypeNonprofit},
		{in: "Enterprise", want: OrgTypeEnterprise},
		{in: "startup", want: OrgTypeEnterprise},
		{in: "", want: OrgTypeEnterprise},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeOrgType(tc.in); got != tc.want {
				t.Fatalf("NormalizeOrgType(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTeamSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want TeamSize
	}{
		{in: "1-10", want: TeamSizeMicro},
		{in: "11-50", want: TeamSizeSmall},
		{in: "51-200", want: TeamSizeMedium},
		{in: "201-1000", want: TeamSizeLarge},
		{in: "1000+", want: TeamSizeXL},
		{in: "about twenty", want: TeamSizeSmall},
		{in: "", want: TeamSizeSmall},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeTeamSize(tc.in); got != tc.want {
				t.Fatalf("NormalizeTeamSize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDefaultRegulations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		orgType OrgType
		want    []string
	}{
		{orgType: OrgTypeLawFirm, want: []string{"GDPR", "CCPA", "HIPAA", "SOX"}},
		{orgType: OrgTypeEnterprise, want: []string{"GDPR", "CCPA", "HIPAA", "SOX", "PCI-DSS"}},
		{orgType: OrgTypeChannelPartner, want: []string{"GDPR", "CCPA"}},
		{orgType: OrgTypeNonprofit, want: []string{"GDPR", "CCPA"}},
		{orgType: OrgTypeGovernment, want: []string{"FISMA", "FedRAMP", "GDPR"}},
		{orgType: OrgType("mystery"), want: []string{"GDPR", "CCPA"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.orgType), func(t *testing.T) {
			assert.Equal(t, tc.want, DefaultRegulations(tc.orgType))
		})
	}
}

func TestDefaultRegulationsReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultRegulations(OrgTypeLawFirm)
	first[0] = "mutated"
	assert.Equal(t, "GDPR", DefaultRegulations(OrgTypeLawFirm)[0])
}

func TestDefaultUserPreferences(t *testing.T) {
	t.Parallel()

	prefs := DefaultUserPreferences()
	assert.Equal(t, "organization", prefs.ProfileVisibility)
	assert.False(t, prefs.DataSharing)
	assert.True(t, prefs.EmailNotifications)
}
