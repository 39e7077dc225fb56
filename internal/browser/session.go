package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"

	"confreview-parser/internal/config"
	"confreview-parser/internal/extract"
	"confreview-parser/internal/observability"
)

// State is the session's authentication state.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateFailed         State = "failed"
)

// Options configure the browser launch.
type Options struct {
	ChromePath string
	Headless   bool
	NavTimeout time.Duration
}

// Session owns one browser context. All operations are serial; the CDP
// connection is not safe for concurrent commands on one page.
type Session struct {
	id       string
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	logger   *observability.Logger

	navTimeout time.Duration
	state      State
}

// Open launches the browser and attaches one blank page. The caller
// must Close the session on every exit path.
func Open(ctx context.Context, opts Options, logger *observability.Logger) (*Session, error) {
	l := launcher.New().Headless(opts.Headless).Leakless(true)
	if opts.ChromePath != "" {
		l = l.Bin(opts.ChromePath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().Context(ctx).ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return nil, err
	}

	s := &Session{
		id:         uuid.New().String(),
		launcher:   l,
		browser:    b,
		page:       page,
		logger:     logger,
		navTimeout: opts.NavTimeout,
		state:      StateAnonymous,
	}

	logger.Info("Browser session opened",
		"session_id", s.id,
		"headless", opts.Headless,
	)

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// Login navigates to the portal URL, submits credentials and blocks
// until either the success selector or the portal's failure indicator
// renders. Failure indicator means rejected credentials; neither within
// the budget means the portal never became ready.
func (s *Session) Login(ctx context.Context, portalURL string, creds config.Credentials, loc extract.LoginLocators, successSel string, timeout time.Duration) error {
	s.state = StateAuthenticating

	if err := s.Navigate(ctx, portalURL); err != nil {
		s.state = StateFailed
		return err
	}

	p := s.page.Context(ctx).Timeout(timeout)

	email, err := p.Element(loc.EmailInput)
	if err != nil {
		s.state = StateFailed
		return &NavTimeoutError{URL: portalURL, Err: err}
	}
	if err := email.Input(creds.Username); err != nil {
		s.state = StateFailed
		return err
	}

	password, err := p.Element(loc.PasswordInput)
	if err != nil {
		s.state = StateFailed
		return &NavTimeoutError{URL: portalURL, Err: err}
	}
	if err := password.Input(creds.Password); err != nil {
		s.state = StateFailed
		return err
	}

	submit, err := p.Element(loc.SubmitButton)
	if err != nil {
		s.state = StateFailed
		return &NavTimeoutError{URL: portalURL, Err: err}
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.state = StateFailed
		return err
	}

	el, err := p.Race().Element(successSel).Element(loc.FailureIndicator).Do()
	if err != nil {
		s.state = StateFailed
		return &NavTimeoutError{URL: portalURL, Err: err}
	}

	if failed, _ := el.Matches(loc.FailureIndicator); failed {
		s.state = StateFailed
		return &AuthError{User: creds.Username}
	}

	s.state = StateAuthenticated
	s.logger.Info("Logged in",
		"session_id", s.id,
		"user", creds.Username,
	)

	return nil
}

// Navigate directs the page to a URL and waits for the load event.
// Content rendered after load is waited for via WaitVisible.
func (s *Session) Navigate(ctx context.Context, rawURL string) error {
	p := s.page.Context(ctx).Timeout(s.navTimeout)

	if err := p.Navigate(rawURL); err != nil {
		return &NavTimeoutError{URL: rawURL, Err: err}
	}
	if err := p.WaitLoad(); err != nil {
		return &NavTimeoutError{URL: rawURL, Err: err}
	}

	return nil
}

// WaitVisible polls for the selector until it appears or the budget is
// spent. Never blocks past the timeout.
func (s *Session) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := s.page.Context(ctx).Timeout(timeout).Element(selector)
	return err
}

// HTML snapshots the rendered DOM.
func (s *Session) HTML() (string, error) {
	return s.page.HTML()
}

// CurrentURL reports the page's location, empty if unavailable.
func (s *Session) CurrentURL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Close releases the browser unconditionally. Safe to call on every
// exit path, including after a failed login.
func (s *Session) Close() {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.logger.Warn("Failed to close browser", "session_id", s.id, "error", err.Error())
		}
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher.Cleanup()
	}
	s.logger.Info("Browser session closed", "session_id", s.id)
}
