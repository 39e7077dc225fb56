package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"confreview-parser/internal/extract"
)

// ProfileSet bundles the portal-wide login locators with the
// per-conference profiles.
type ProfileSet struct {
	Login       extract.LoginLocators      `yaml:"login"`
	Conferences map[string]extract.Profile `yaml:"conferences"`
}

// DefaultProfiles covers the portals observed so far. A profiles file
// overrides or extends these without code changes.
func DefaultProfiles() *ProfileSet {
	openreviewListing := extract.ListingLocators{
		Row:     "div.note",
		Title:   []string{"h4 > a", ".note-title > a"},
		Link:    []string{"h4 > a", ".note-title > a"},
		IDParam: "id",
	}
	openreviewForum := extract.ForumLocators{
		Title:           []string{".citation_title", ".forum-title h2"},
		NumberFrom:      []string{"div.forum-note div.note-content", ".forum-note .note-content"},
		NumberLabel:     "Number:",
		Reply:           "#forum-replies .depth-odd",
		RatingLabel:     "Rating:",
		ConfidenceLabel: "Confidence:",
	}

	return &ProfileSet{
		Login: extract.LoginLocators{
			EmailInput:       "#email-input",
			PasswordInput:    "#password-input",
			SubmitButton:     ".btn-login",
			FailureIndicator: ".alert-danger, .important_message",
		},
		Conferences: map[string]extract.Profile{
			"iclr_2025": {
				Name:       "ICLR 2025",
				ConsoleURL: "https://openreview.net/group?id=ICLR.cc/2025/Conference/Area_Chairs",
				HasReviews: true,
				Listing:    openreviewListing,
				Forum:      openreviewForum,
			},
			"cvpr_2025": {
				Name:       "CVPR 2025",
				ConsoleURL: "https://openreview.net/group?id=thecvf.com/CVPR/2025/Conference/Area_Chairs",
				HasReviews: true,
				Listing:    openreviewListing,
				Forum:      openreviewForum,
			},
		},
	}
}

// LoadProfiles reads a profiles file and merges it over the defaults:
// the file's login block (if set) and conferences win, defaults fill
// the rest.
func LoadProfiles(filePath string) (*ProfileSet, error) {
	defaults := DefaultProfiles()
	if filePath == "" {
		return defaults, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open profiles file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close profiles file: %v\n", closeErr)
		}
	}()

	var loaded ProfileSet
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&loaded); err != nil {
		return nil, fmt.Errorf("failed to parse profiles YAML: %w", err)
	}

	if loaded.Login != (extract.LoginLocators{}) {
		defaults.Login = loaded.Login
	}
	for name, profile := range loaded.Conferences {
		defaults.Conferences[name] = profile
	}

	if err := defaults.Validate(); err != nil {
		return nil, err
	}

	return defaults, nil
}

func (ps *ProfileSet) Validate() error {
	if err := ps.Login.Validate(); err != nil {
		return err
	}
	if len(ps.Conferences) == 0 {
		return fmt.Errorf("at least one conference profile is required")
	}
	for name, profile := range ps.Conferences {
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
	}
	return nil
}

// Get resolves a conference profile by name.
func (ps *ProfileSet) Get(name string) (*extract.Profile, error) {
	profile, ok := ps.Conferences[name]
	if !ok {
		return nil, fmt.Errorf("unknown conference %q, available: %v", name, ps.Names())
	}
	return &profile, nil
}

// Names lists known conference names, sorted.
func (ps *ProfileSet) Names() []string {
	names := make([]string, 0, len(ps.Conferences))
	for name := range ps.Conferences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
