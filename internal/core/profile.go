package core

import "net/url"

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type (
	Theme string

	// Profile is the display identity shown by the view layer. ProfilePic is
	// an opaque image-data reference; when empty a generated avatar keyed by
	// the username is used instead.
	Profile struct {
		Username   string `json:"username"`
		Email      string `json:"email"`
		ProfilePic string `json:"profilePic,omitempty"`
	}
)

// DefaultProfile is the identity used on first run, before the user edits it.
func DefaultProfile() Profile {
	return Profile{
		Username: "Alex Johnson",
		Email:    "alex.johnson@example.com",
	}
}

// AvatarURL returns the profile picture reference, or a deterministic
// generated avatar derived from the username when none is set.
func (p Profile) AvatarURL() string {
	if p.ProfilePic != "" {
		return p.ProfilePic
	}
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(p.Username)
}

// IsValid reports whether t is one of the two enumerated themes.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Flip returns the opposite theme.
func (t Theme) Flip() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Curated category suggestions offered by the view layer per transaction
// type. The ledger itself accepts arbitrary category labels.
var (
	IncomeCategories  = []string{"Salary", "Freelance", "Investments", "Gift", "Other"}
	ExpenseCategories = []string{"Food", "Rent", "Utilities", "Transport", "Coffee", "Shopping", "Health", "Other"}
)
