// Package host implements the top-level screen router of the FITODO client.
//
// The router decides which screen is mounted: the sign-up gate, one of the
// five tabs, or a full-screen overlay such as the Shuttle Run capture wizard.
// User actions are dispatched by name and answered with a Notice, the
// terminal counterpart of a toast.
package host

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/fitodo/fitodo/internal/catalog"
)

// Tab is a bottom-navigation tab.
type Tab string

// Tabs.
const (
	TabHome      Tab = "home"
	TabTests     Tab = "tests"
	TabCommunity Tab = "community"
	TabProfile   Tab = "profile"
	TabHelp      Tab = "help"
)

// Tabs lists the navigation tabs in display order.
var Tabs = []Tab{TabHome, TabTests, TabCommunity, TabProfile, TabHelp}

// Title returns the tab label.
func (t Tab) Title() string {
	switch t {
	case TabHome:
		return "Home"
	case TabTests:
		return "Tests"
	case TabCommunity:
		return "Community"
	case TabProfile:
		return "Profile"
	case TabHelp:
		return "Help"
	}
	return string(t)
}

// Overlay is a full-screen view that hides the tab bar.
type Overlay string

// Overlays. OverlayNone means a tab is shown.
const (
	OverlayNone       Overlay = ""
	OverlayEducation  Overlay = "education"
	OverlayEquipment  Overlay = "equipment"
	OverlayFamily     Overlay = "family"
	OverlayWomen      Overlay = "women"
	OverlaySAI        Overlay = "sai"
	OverlayShuttleRun Overlay = "shuttle-run"
)

// Screen identifies what the router currently mounts.
type Screen struct {
	SignUp  bool
	Tab     Tab
	Overlay Overlay
}

// String returns "signup", the overlay name, or the tab name.
func (s Screen) String() string {
	switch {
	case s.SignUp:
		return "signup"
	case s.Overlay != OverlayNone:
		return string(s.Overlay)
	default:
		return string(s.Tab)
	}
}

// Router holds the application-level navigation state.
type Router struct {
	tab      Tab
	overlay  Overlay
	role     Role
	name     string
	signedIn bool

	log logr.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router's logger.
func WithLogger(log logr.Logger) Option {
	return func(r *Router) { r.log = log }
}

// WithProfile marks the user as already signed up.
func WithProfile(name string, role Role) Option {
	return func(r *Router) {
		r.name = name
		r.role = role
		r.signedIn = true
	}
}

// NewRouter creates a router on the Home tab behind the sign-up gate.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		tab:  TabHome,
		role: RoleAthlete,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Screen returns the mounted screen.
func (r *Router) Screen() Screen {
	return Screen{SignUp: !r.signedIn, Tab: r.tab, Overlay: r.overlay}
}

// Role returns the signed-in user's role.
func (r *Router) Role() Role { return r.role }

// Name returns the signed-in user's name.
func (r *Router) Name() string { return r.name }

// CompleteSignUp lifts the sign-up gate.
func (r *Router) CompleteSignUp(name string, role Role) Notice {
	r.name = name
	r.role = role
	r.signedIn = true
	r.log.Info("sign-up complete", "role", string(role))
	return success("Welcome to FITODO! 🎉")
}

// SetTab switches tabs. Unknown tabs fall back to Home.
func (r *Router) SetTab(tab Tab) {
	switch tab {
	case TabHome, TabTests, TabCommunity, TabProfile, TabHelp:
		r.tab = tab
	default:
		r.tab = TabHome
	}
}

func (r *Router) open(o Overlay) {
	r.overlay = o
	r.log.V(1).Info("overlay opened", "overlay", string(o))
}

// Back closes the current overlay. Leaving the capture wizard lands on the
// Tests tab; other overlays return to the tab they covered.
func (r *Router) Back() {
	if r.overlay == OverlayShuttleRun {
		r.tab = TabTests
	}
	r.overlay = OverlayNone
}

// Dispatch handles a named home-screen action. Names without a handler get a
// generic "coming soon" notice.
func (r *Router) Dispatch(action string) Notice {
	r.log.V(1).Info("dispatch", "action", action)

	switch action {
	case ActionStartTest:
		r.SetTab(TabTests)
		return success("Opening fitness tests...")
	case ActionViewProgress:
		r.SetTab(TabProfile)
		return success("Viewing your progress...")
	case ActionJoinCompetition:
		r.SetTab(TabCommunity)
		return success("Exploring competitions...")
	case ActionFindCoach:
		r.SetTab(TabCommunity)
		return success("Finding coaches for you...")
	case ActionEquipmentShop:
		r.open(OverlayEquipment)
		return success("Opening equipment marketplace...")
	case ActionEducation:
		r.open(OverlayEducation)
		return success("Opening educational resources...")
	case ActionCommunity:
		r.SetTab(TabCommunity)
		return success("Welcome to the community!")
	case ActionFamilyDashboard:
		r.open(OverlayFamily)
		return success("Opening family dashboard...")
	case ActionWomenSafeSpace:
		r.open(OverlayWomen)
		return success("Opening women's safe space...")
	case ActionSAIAdmin:
		r.open(OverlaySAI)
		return success("Opening SAI admin dashboard...")
	}
	return info(fmt.Sprintf("%s feature coming soon!", action))
}

var comingSoonTests = map[string]string{
	catalog.VerticalJump: "Vertical Jump",
	catalog.SitUps:       "Sit-ups",
	catalog.EnduranceRun: "Endurance Run",
	catalog.Flexibility:  "Flexibility",
	catalog.PlankHold:    "Plank Hold",
}

// SelectTest handles a pick on the Tests tab. Only the Shuttle Run has a
// capture flow; it mounts the wizard overlay.
func (r *Router) SelectTest(id string) Notice {
	if id == catalog.ShuttleRun {
		r.open(OverlayShuttleRun)
		return success("Starting Shuttle Run test...")
	}
	if title, ok := comingSoonTests[id]; ok {
		return info(title + " test coming soon!")
	}
	return success(fmt.Sprintf("Starting %s test...", strings.Replace(id, "-", " ", 1)))
}

// Help handles a pick on the Help tab.
func (r *Router) Help(section string) Notice {
	switch section {
	case HelpTutorials:
		return info("Opening video tutorials...")
	case HelpFAQ:
		return info("Frequently asked questions...")
	case HelpContact:
		return info("Connecting to support...")
	case HelpVoice:
		return info("Voice assistant help activated!")
	case HelpAccessibility:
		return info("Accessibility guide opened...")
	case HelpSafety:
		if r.role.Guardian() {
			r.open(OverlayFamily)
			return success("Opening family safety dashboard...")
		}
		return info("Safety and privacy information...")
	case HelpWomenSafety:
		r.open(OverlayWomen)
		return success("Opening women's safe space...")
	}
	return info(fmt.Sprintf("%s help section opened!", section))
}

// Setting handles a pick on the Profile tab.
func (r *Router) Setting(name string) Notice {
	switch name {
	case SettingEditProfile:
		return info("Profile editor opening...")
	case SettingNotifications:
		return info("Notification preferences updated!")
	case SettingHeadGestures:
		return info("Head gesture navigation toggled!")
	case SettingVoiceAssistant:
		return info("Voice assistant settings updated!")
	case SettingLanguage:
		return info("Language selector opening...")
	}
	return info(fmt.Sprintf("%s settings opened!", name))
}

// Feature handles a pick on the Community tab.
func (r *Router) Feature(name string) Notice {
	return info(fmt.Sprintf("%s feature opened!", name))
}
