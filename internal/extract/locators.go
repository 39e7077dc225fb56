package extract

import "fmt"

// Profile describes where one conference's portal keeps the submission
// list and the review widgets. Adding a conference is a configuration
// change only; the engine never special-cases a portal.
type Profile struct {
	Name       string          `yaml:"name"`
	ConsoleURL string          `yaml:"console_url"`
	HasReviews bool            `yaml:"has_reviews"`
	Listing    ListingLocators `yaml:"listing"`
	Forum      ForumLocators   `yaml:"forum"`
}

// ListingLocators locate submission rows on the console page. Title and
// Link are candidate selector chains tried in order, because portal
// markup differs between conference deployments.
type ListingLocators struct {
	Row     string   `yaml:"row"`
	Title   []string `yaml:"title"`
	Link    []string `yaml:"link"`
	IDParam string   `yaml:"id_param"`
}

// ForumLocators locate per-submission data on the forum (detail) page.
// Labels are literal prefixes searched inside reply text, since the
// portal renders review fields as labeled plain text.
type ForumLocators struct {
	Title           []string `yaml:"title"`
	NumberFrom      []string `yaml:"number_from"`
	NumberLabel     string   `yaml:"number_label"`
	Reply           string   `yaml:"reply"`
	RatingLabel     string   `yaml:"rating_label"`
	ConfidenceLabel string   `yaml:"confidence_label"`
}

// LoginLocators are portal-wide: every conference shares the same login
// form.
type LoginLocators struct {
	EmailInput       string `yaml:"email_input"`
	PasswordInput    string `yaml:"password_input"`
	SubmitButton     string `yaml:"submit_button"`
	FailureIndicator string `yaml:"failure_indicator"`
}

func (p *Profile) Validate() error {
	if p.ConsoleURL == "" {
		return fmt.Errorf("console_url is required")
	}
	if p.Listing.Row == "" {
		return fmt.Errorf("listing.row is required")
	}
	if len(p.Listing.Title) == 0 {
		return fmt.Errorf("listing.title is required")
	}
	if len(p.Listing.Link) == 0 {
		return fmt.Errorf("listing.link is required")
	}
	if p.HasReviews {
		if p.Forum.Reply == "" {
			return fmt.Errorf("forum.reply is required when has_reviews is true")
		}
		if p.Forum.RatingLabel == "" {
			return fmt.Errorf("forum.rating_label is required when has_reviews is true")
		}
	}
	return nil
}

func (l *LoginLocators) Validate() error {
	if l.EmailInput == "" {
		return fmt.Errorf("login.email_input is required")
	}
	if l.PasswordInput == "" {
		return fmt.Errorf("login.password_input is required")
	}
	if l.SubmitButton == "" {
		return fmt.Errorf("login.submit_button is required")
	}
	if l.FailureIndicator == "" {
		return fmt.Errorf("login.failure_indicator is required")
	}
	return nil
}
