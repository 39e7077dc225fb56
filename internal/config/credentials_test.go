package config

import "testing"

func TestLoadCredentials(t *testing.T) {
	t.Setenv("OPENREVIEW_USERNAME", "reviewer@example.org")
	t.Setenv("OPENREVIEW_PASSWORD", "hunter2")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds.Username != "reviewer@example.org" || creds.Password != "hunter2" {
		t.Errorf("creds = %+v", creds)
	}
}

func TestLoadCredentialsFallbackNames(t *testing.T) {
	t.Setenv("OPENREVIEW_USERNAME", "")
	t.Setenv("OPENREVIEW_PASSWORD", "")
	t.Setenv("USERNAME", "reviewer@example.org")
	t.Setenv("PASSWORD", "hunter2")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if creds.Username != "reviewer@example.org" {
		t.Errorf("username = %q", creds.Username)
	}
}

func TestLoadCredentialsMissing(t *testing.T) {
	t.Setenv("OPENREVIEW_USERNAME", "")
	t.Setenv("OPENREVIEW_PASSWORD", "")
	t.Setenv("USERNAME", "")
	t.Setenv("PASSWORD", "")

	if _, err := LoadCredentials(); err == nil {
		t.Fatal("expected error when credentials are unset")
	}
}
