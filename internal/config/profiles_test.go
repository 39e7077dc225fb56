package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfilesValid(t *testing.T) {
	ps := DefaultProfiles()
	if err := ps.Validate(); err != nil {
		t.Fatalf("default profiles invalid: %v", err)
	}

	profile, err := ps.Get("iclr_2025")
	if err != nil {
		t.Fatalf("Get(iclr_2025): %v", err)
	}
	if profile.ConsoleURL == "" || profile.Listing.Row == "" {
		t.Errorf("iclr_2025 profile incomplete: %+v", profile)
	}
}

func TestGetUnknownConference(t *testing.T) {
	if _, err := DefaultProfiles().Get("neurips_1998"); err == nil {
		t.Fatal("expected error for unknown conference")
	}
}

func TestLoadProfilesMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conferences.yaml")
	content := `
conferences:
  acl_2026:
    name: "ACL 2026"
    console_url: "https://portal.example.org/acl/2026/chairs"
    has_reviews: false
    listing:
      row: "tr.submission"
      title: ["td.title a"]
      link: ["td.title a"]
      id_param: "paper"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}

	ps, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}

	// New conference added, built-ins and login locators retained.
	if _, err := ps.Get("acl_2026"); err != nil {
		t.Errorf("merged profile missing: %v", err)
	}
	if _, err := ps.Get("iclr_2025"); err != nil {
		t.Errorf("default profile lost after merge: %v", err)
	}
	if ps.Login.EmailInput == "" {
		t.Errorf("login locators lost after merge")
	}
}

func TestLoadProfilesRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conferences.yaml")
	content := `
conferences:
  broken:
    name: "Broken"
    console_url: "https://portal.example.org"
    listing:
      row: ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}

	if _, err := LoadProfiles(path); err == nil {
		t.Fatal("expected validation error for incomplete profile")
	}
}

func TestLoadProfilesEmptyPathUsesDefaults(t *testing.T) {
	ps, err := LoadProfiles("")
	if err != nil {
		t.Fatalf("LoadProfiles(\"\"): %v", err)
	}
	if len(ps.Names()) < 2 {
		t.Errorf("expected built-in conferences, got %v", ps.Names())
	}
}
