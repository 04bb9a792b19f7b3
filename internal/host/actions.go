package host

import (
	"fmt"
	"strings"
)

// Role is the account type chosen at sign-up.
type Role string

// Roles.
const (
	RoleAthlete  Role = "athlete"
	RoleParent   Role = "parent"
	RoleCoach    Role = "coach"
	RoleOfficial Role = "official"
)

// Roles lists every role in sign-up order.
var Roles = []Role{RoleAthlete, RoleParent, RoleCoach, RoleOfficial}

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q (expected athlete, parent, coach or official)", s)
}

// Guardian reports whether the role sees the family and safety features.
func (r Role) Guardian() bool {
	return r == RoleParent || r == RoleCoach
}

// Home-screen action names.
const (
	ActionStartTest       = "start-test"
	ActionViewProgress    = "view-progress"
	ActionJoinCompetition = "join-competition"
	ActionFindCoach       = "find-coach"
	ActionEquipmentShop   = "equipment-shop"
	ActionEducation       = "education"
	ActionCommunity       = "community"
	ActionFamilyDashboard = "family-dashboard"
	ActionWomenSafeSpace  = "women-safe-space"
	ActionSAIAdmin        = "sai-admin"
)

// Help-tab section names.
const (
	HelpTutorials     = "tutorials"
	HelpFAQ           = "faq"
	HelpContact       = "contact"
	HelpVoice         = "voice-help"
	HelpAccessibility = "accessibility"
	HelpSafety        = "safety"
	HelpWomenSafety   = "women-safety"
)

// Profile-tab setting names.
const (
	SettingEditProfile    = "edit-profile"
	SettingNotifications  = "notifications"
	SettingPrivacy        = "privacy"
	SettingHeadGestures   = "head-gestures"
	SettingVoiceAssistant = "voice-assistant"
	SettingHighContrast   = "high-contrast"
	SettingLargeText      = "large-text"
	SettingLanguage       = "language"
	SettingShareApp       = "share-app"
)

// Item is one selectable entry on a tab.
type Item struct {
	ID          string
	Title       string
	Description string
}

var quickActions = []Item{
	{ActionStartTest, "Start Test", "Begin a fitness assessment"},
	{ActionViewProgress, "View Progress", "Track your improvement"},
	{ActionJoinCompetition, "Join Competition", "Compete with others"},
	{ActionEducation, "Learn & Grow", "Training tips and guides"},
	{ActionEquipmentShop, "Equipment Shop", "Gear for your sport"},
	{ActionCommunity, "Community", "Connect with athletes"},
}

// HomeActions returns the home-screen actions visible to a role.
func HomeActions(role Role) []Item {
	items := append([]Item(nil), quickActions...)
	if role.Guardian() {
		items = append(items,
			Item{ActionFamilyDashboard, "Family Dashboard", "Monitor child's progress"},
			Item{ActionWomenSafeSpace, "Women's Space", "Safe community for girls"},
		)
	}
	if role == RoleOfficial {
		items = append(items, Item{ActionSAIAdmin, "SAI Admin Dashboard", "Verify and review assessments"})
	}
	return items
}

// HelpSections lists the Help tab entries.
var HelpSections = []Item{
	{HelpTutorials, "Video Tutorials", "Step-by-step test guides"},
	{HelpFAQ, "FAQ", "Common questions answered"},
	{HelpContact, "Contact Support", "Talk to our team"},
	{HelpVoice, "Voice Assistant", "Hands-free help"},
	{HelpAccessibility, "Accessibility Guide", "Gestures, contrast and text size"},
	{HelpSafety, "Safety & Privacy", "How your data is protected"},
	{HelpWomenSafety, "Women's Safe Space", "Safe community for girls"},
}

// Settings lists the Profile tab entries.
var Settings = []Item{
	{SettingEditProfile, "Edit Profile", ""},
	{SettingNotifications, "Notifications", ""},
	{SettingPrivacy, "Privacy & Safety", ""},
	{SettingHeadGestures, "Head Gesture Navigation", ""},
	{SettingVoiceAssistant, "Voice Assistant", ""},
	{SettingHighContrast, "High Contrast Mode", ""},
	{SettingLargeText, "Large Text", ""},
	{SettingLanguage, "Language (English)", ""},
	{SettingShareApp, "Share App", ""},
}

// CommunityFeatures lists the Community tab entries.
var CommunityFeatures = []Item{
	{"leaderboard", "Leaderboard", "See where you rank"},
	{"competitions", "Competitions", "Upcoming district events"},
	{"coaches", "Coaches", "Certified coaches near you"},
	{"groups", "Training Groups", "Train with peers"},
}

// NoticeKind classifies a notice.
type NoticeKind int

// Notice kinds.
const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
)

// String returns "info" or "success".
func (k NoticeKind) String() string {
	if k == NoticeSuccess {
		return "success"
	}
	return "info"
}

// Notice is a transient message shown after an action.
type Notice struct {
	Kind NoticeKind
	Text string
}

func success(text string) Notice { return Notice{Kind: NoticeSuccess, Text: text} }
func info(text string) Notice    { return Notice{Kind: NoticeInfo, Text: text} }
