package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveIntakeModeAliases(t *testing.T) {
	cases := map[string]IntakeMode{
		"":           ModeContact,
		"contact":    ModeContact,
		"gibberish":  ModeContact,
		"benevole":   ModeVolunteer,
		"Bénévole":   ModeVolunteer,
		"BÉNÉVOLAT":  ModeVolunteer,
		"volunteer":  ModeVolunteer,
		"adhesion":   ModeMembership,
		"Adhésion":   ModeMembership,
		" adhérer ":  ModeMembership,
		"membership": ModeMembership,
		"join":       ModeMembership,
	}

	for raw, expected := range cases {
		require.Equal(t, expected, ResolveIntakeMode(raw), "raw input %q", raw)
	}
}

func TestResolveIntakeModeIdempotent(t *testing.T) {
	for _, mode := range []IntakeMode{ModeContact, ModeVolunteer, ModeMembership} {
		require.Equal(t, mode, ResolveIntakeMode(string(mode)))
	}
}

func TestModeProfileCopy(t *testing.T) {
	profile := ModeVolunteer.Profile()
	require.Equal(t, "Devenir bénévole", profile.Title)
	require.Equal(t, "Candidature bénévole — Jeanne Dupont", profile.OrgSubject("Jeanne Dupont"))
	require.NotEmpty(t, profile.AckSubject)
	require.NotEmpty(t, profile.SuccessMessage)
}

func TestModeProfileFallsBackToContact(t *testing.T) {
	unknown := IntakeMode("whatever")
	require.Equal(t, ModeContact.Profile(), unknown.Profile())
}
