package onboarding

import (
	"github.com/charmbracelet/huh"

	"github.com/fitodo/fitodo/internal/host"
)

// Regions lists the states offered by the region select.
var Regions = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
}

// SportOptions are the sports an athlete can follow.
var SportOptions = []huh.Option[string]{
	huh.NewOption("🏏 Cricket", "cricket"),
	huh.NewOption("⚽ Football", "football"),
	huh.NewOption("🏃 Athletics", "athletics"),
	huh.NewOption("🏸 Badminton", "badminton"),
	huh.NewOption("🏀 Basketball", "basketball"),
	huh.NewOption("🎾 Tennis", "tennis"),
	huh.NewOption("🏊 Swimming", "swimming"),
	huh.NewOption("🤼 Wrestling", "wrestling"),
	huh.NewOption("🏑 Hockey", "hockey"),
	huh.NewOption("🤸 Kabaddi", "kabaddi"),
}

// Target levels.
const (
	LevelDistrict      = "district"
	LevelState         = "state"
	LevelNational      = "national"
	LevelInternational = "international"
)

// TargetLevelOptions are the competition levels an athlete aims for.
var TargetLevelOptions = []huh.Option[string]{
	huh.NewOption("District Level", LevelDistrict),
	huh.NewOption("State Level", LevelState),
	huh.NewOption("National Level", LevelNational),
	huh.NewOption("International Level", LevelInternational),
}

// ExperienceOptions are the self-reported experience levels.
var ExperienceOptions = []huh.Option[string]{
	huh.NewOption("Beginner", "beginner"),
	huh.NewOption("Intermediate", "intermediate"),
	huh.NewOption("Advanced", "advanced"),
}

// RoleOptions returns the user-type select options.
func RoleOptions() []huh.Option[host.Role] {
	return []huh.Option[host.Role]{
		huh.NewOption("Athlete - I want to track my performance", host.RoleAthlete),
		huh.NewOption("Parent/Guardian - I'm registering for my child", host.RoleParent),
		huh.NewOption("Coach - I train and mentor athletes", host.RoleCoach),
		huh.NewOption("Sports Official - I organize competitions", host.RoleOfficial),
	}
}

// RegionOptions converts Regions to select options.
func RegionOptions() []huh.Option[string] {
	return huh.NewOptions(Regions...)
}
