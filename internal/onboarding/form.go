// Package onboarding implements the sign-up form shown before the host app.
package onboarding

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/fitodo/fitodo/internal/host"
)

// Profile is what the sign-up form collects.
type Profile struct {
	Name        string
	Phone       string
	Email       string
	Region      string
	Sports      []string
	TargetLevel string
	Experience  string
	Role        host.Role
	VoiceHelp   bool
	AcceptTerms bool
}

// emailRegex matches local@domain.tld.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewForm builds the three-page sign-up form writing into p. Fields already
// set on p are used as defaults.
func NewForm(p *Profile) *huh.Form {
	if p.Role == "" {
		p.Role = host.RoleAthlete
	}
	if p.TargetLevel == "" {
		p.TargetLevel = LevelDistrict
	}
	if p.Experience == "" {
		p.Experience = "beginner"
	}
	if p.Region == "" {
		p.Region = Regions[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Placeholder("Enter your full name").
				Value(&p.Name).
				Validate(validateName),
			huh.NewInput().
				Title("Phone Number").
				Placeholder("+91 98765 43210").
				Value(&p.Phone).
				Validate(validatePhone),
			huh.NewInput().
				Title("Email Address").
				Placeholder("you@example.com").
				Value(&p.Email).
				Validate(validateEmail),
			huh.NewSelect[string]().
				Title("State/Region").
				Options(RegionOptions()...).
				Value(&p.Region),
		).Title("Basic Information"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select Your Sports").
				Options(SportOptions...).
				Value(&p.Sports).
				Validate(validateSports),
			huh.NewSelect[string]().
				Title("Target Level").
				Options(TargetLevelOptions...).
				Value(&p.TargetLevel),
			huh.NewSelect[string]().
				Title("Experience Level").
				Options(ExperienceOptions...).
				Value(&p.Experience),
		).Title("Sports & Goals"),
		huh.NewGroup(
			huh.NewSelect[host.Role]().
				Title("User Type").
				Options(RoleOptions()...).
				Value(&p.Role),
			huh.NewConfirm().
				Title("Voice Commands").
				Description("Hands-free navigation during tests").
				Value(&p.VoiceHelp),
			huh.NewConfirm().
				Title("I agree to the Terms of Service and Privacy Policy").
				Value(&p.AcceptTerms).
				Validate(validateTerms),
		).Title("Verification & Preferences"),
	)
}

// Run shows the sign-up form. defaults pre-fills the fields.
func Run(ctx context.Context, defaults Profile) (Profile, error) {
	p := defaults
	if err := NewForm(&p).RunWithContext(ctx); err != nil {
		return Profile{}, fmt.Errorf("sign-up: %w", err)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	return p, nil
}

func validateName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errNameRequired
	}
	if utf8.RuneCountInString(s) > 64 {
		return errNameTooLong
	}
	return nil
}

// phoneSeparators strips the punctuation allowed between phone digits.
var phoneSeparators = strings.NewReplacer("+", "", " ", "", "-", "", "(", "", ")", "")

func validatePhone(s string) error {
	if strings.TrimSpace(s) == "" {
		return errPhoneRequired
	}
	digits := phoneSeparators.Replace(s)
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errPhoneInvalid
		}
	}
	switch {
	case len(digits) == 10:
		return nil
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return nil
	}
	return errPhoneInvalid
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errEmailRequired
	}
	if !emailRegex.MatchString(s) {
		return errEmailInvalid
	}
	return nil
}

func validateSports(s []string) error {
	if len(s) == 0 {
		return errSportsRequired
	}
	return nil
}

func validateTerms(accepted bool) error {
	if !accepted {
		return errTermsRequired
	}
	return nil
}
