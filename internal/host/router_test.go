package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitodo/fitodo/internal/catalog"
)

func signedIn(role Role) *Router {
	return NewRouter(WithProfile("Asha", role))
}

func TestNewRouter_StartsBehindSignUp(t *testing.T) {
	r := NewRouter()

	s := r.Screen()
	assert.True(t, s.SignUp)
	assert.Equal(t, "signup", s.String())
	assert.Equal(t, RoleAthlete, r.Role())
}

func TestCompleteSignUp(t *testing.T) {
	r := NewRouter()

	n := r.CompleteSignUp("Asha", RoleCoach)

	assert.Equal(t, NoticeSuccess, n.Kind)
	assert.Contains(t, n.Text, "Welcome to FITODO!")
	assert.False(t, r.Screen().SignUp)
	assert.Equal(t, "home", r.Screen().String())
	assert.Equal(t, RoleCoach, r.Role())
	assert.Equal(t, "Asha", r.Name())
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		action  string
		screen  string
		kind    NoticeKind
		message string
	}{
		{ActionStartTest, "tests", NoticeSuccess, "Opening fitness tests..."},
		{ActionViewProgress, "profile", NoticeSuccess, "Viewing your progress..."},
		{ActionJoinCompetition, "community", NoticeSuccess, "Exploring competitions..."},
		{ActionFindCoach, "community", NoticeSuccess, "Finding coaches for you..."},
		{ActionEquipmentShop, "equipment", NoticeSuccess, "Opening equipment marketplace..."},
		{ActionEducation, "education", NoticeSuccess, "Opening educational resources..."},
		{ActionCommunity, "community", NoticeSuccess, "Welcome to the community!"},
		{ActionFamilyDashboard, "family", NoticeSuccess, "Opening family dashboard..."},
		{ActionWomenSafeSpace, "women", NoticeSuccess, "Opening women's safe space..."},
		{ActionSAIAdmin, "sai", NoticeSuccess, "Opening SAI admin dashboard..."},
		{"leaderboard", "home", NoticeInfo, "leaderboard feature coming soon!"},
		{"", "home", NoticeInfo, " feature coming soon!"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			r := signedIn(RoleAthlete)
			n := r.Dispatch(tt.action)

			assert.Equal(t, tt.kind, n.Kind)
			assert.Equal(t, tt.message, n.Text)
			assert.Equal(t, tt.screen, r.Screen().String())
		})
	}
}

func TestSelectTest(t *testing.T) {
	tests := []struct {
		id      string
		kind    NoticeKind
		message string
		overlay Overlay
	}{
		{catalog.ShuttleRun, NoticeSuccess, "Starting Shuttle Run test...", OverlayShuttleRun},
		{catalog.VerticalJump, NoticeInfo, "Vertical Jump test coming soon!", OverlayNone},
		{catalog.SitUps, NoticeInfo, "Sit-ups test coming soon!", OverlayNone},
		{catalog.EnduranceRun, NoticeInfo, "Endurance Run test coming soon!", OverlayNone},
		{catalog.Flexibility, NoticeInfo, "Flexibility test coming soon!", OverlayNone},
		{catalog.PlankHold, NoticeInfo, "Plank Hold test coming soon!", OverlayNone},
		{"broad-jump-test", NoticeSuccess, "Starting broad jump-test test...", OverlayNone},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r := signedIn(RoleAthlete)
			n := r.SelectTest(tt.id)

			assert.Equal(t, tt.kind, n.Kind)
			assert.Equal(t, tt.message, n.Text)
			assert.Equal(t, tt.overlay, r.Screen().Overlay)
		})
	}
}

func TestBack_FromWizardLandsOnTests(t *testing.T) {
	r := signedIn(RoleAthlete)
	r.SelectTest(catalog.ShuttleRun)
	require.Equal(t, OverlayShuttleRun, r.Screen().Overlay)

	r.Back()

	assert.Equal(t, OverlayNone, r.Screen().Overlay)
	assert.Equal(t, TabTests, r.Screen().Tab)
}

func TestBack_FromOverlayKeepsTab(t *testing.T) {
	r := signedIn(RoleParent)
	r.SetTab(TabProfile)
	r.Dispatch(ActionFamilyDashboard)

	r.Back()

	assert.Equal(t, "profile", r.Screen().String())
}

func TestHelp_SafetyDependsOnRole(t *testing.T) {
	for _, role := range []Role{RoleParent, RoleCoach} {
		r := signedIn(role)
		n := r.Help(HelpSafety)
		assert.Equal(t, NoticeSuccess, n.Kind)
		assert.Equal(t, OverlayFamily, r.Screen().Overlay, string(role))
	}

	for _, role := range []Role{RoleAthlete, RoleOfficial} {
		r := signedIn(role)
		n := r.Help(HelpSafety)
		assert.Equal(t, "Safety and privacy information...", n.Text)
		assert.Equal(t, OverlayNone, r.Screen().Overlay, string(role))
	}
}

func TestHelp(t *testing.T) {
	r := signedIn(RoleAthlete)
	assert.Equal(t, "Opening video tutorials...", r.Help(HelpTutorials).Text)
	assert.Equal(t, "Connecting to support...", r.Help(HelpContact).Text)
	assert.Equal(t, "glossary help section opened!", r.Help("glossary").Text)

	r.Help(HelpWomenSafety)
	assert.Equal(t, OverlayWomen, r.Screen().Overlay)
}

func TestSettingAndFeature(t *testing.T) {
	r := signedIn(RoleAthlete)
	assert.Equal(t, "Profile editor opening...", r.Setting(SettingEditProfile).Text)
	assert.Equal(t, "Language selector opening...", r.Setting(SettingLanguage).Text)
	assert.Equal(t, "privacy settings opened!", r.Setting(SettingPrivacy).Text)
	assert.Equal(t, "Leaderboard feature opened!", r.Feature("Leaderboard").Text)
}

func TestSetTab_UnknownFallsBackHome(t *testing.T) {
	r := signedIn(RoleAthlete)
	r.SetTab(TabHelp)
	assert.Equal(t, TabHelp, r.Screen().Tab)

	r.SetTab(Tab("settings"))
	assert.Equal(t, TabHome, r.Screen().Tab)
}

func TestHomeActions_RoleGated(t *testing.T) {
	ids := func(items []Item) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.ID
		}
		return out
	}

	athlete := ids(HomeActions(RoleAthlete))
	assert.Len(t, athlete, 6)
	assert.NotContains(t, athlete, ActionFamilyDashboard)
	assert.NotContains(t, athlete, ActionSAIAdmin)

	parent := ids(HomeActions(RoleParent))
	assert.Contains(t, parent, ActionFamilyDashboard)
	assert.Contains(t, parent, ActionWomenSafeSpace)
	assert.NotContains(t, parent, ActionSAIAdmin)

	official := ids(HomeActions(RoleOfficial))
	assert.Contains(t, official, ActionSAIAdmin)
	assert.NotContains(t, official, ActionFamilyDashboard)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Coach ")
	require.NoError(t, err)
	assert.Equal(t, RoleCoach, r)

	_, err = ParseRole("referee")
	require.Error(t, err)
}

func TestTabTitle(t *testing.T) {
	for _, tab := range Tabs {
		assert.NotEmpty(t, tab.Title())
	}
	assert.Equal(t, "custom", Tab("custom").Title())
}
