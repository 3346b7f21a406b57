package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ErrDevBuild is returned when the running binary has no release version.
var ErrDevBuild = errors.New("cannot check a development build")

const defaultAPIBaseURL = "https://api.github.com"

// Checker queries the release feed for a newer version of the binary.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithAPIBaseURL overrides the release API endpoint (used in tests).
func WithAPIBaseURL(u string) Option {
	return func(c *Checker) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the HTTP timeout for release checks.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// NewChecker creates a Checker for the project's release feed.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:      "amehta",
		repo:       "practik",
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result describes the outcome of a version check.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// Check fetches the latest release tag and compares it against the
// running version using semver ordering.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	if current == "(devel)" || current == "" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from release API", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release response: %w", err)
	}

	var rel releaseResponse
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}
	if rel.TagName == "" {
		return nil, errors.New("release feed returned no tag")
	}

	latest := canonical(rel.TagName)
	cur := canonical(current)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not semver", rel.TagName)
	}
	if !semver.IsValid(cur) {
		return nil, fmt.Errorf("current version %q is not semver", current)
	}

	return &Result{
		CurrentVersion:  current,
		LatestVersion:   rel.TagName,
		UpdateAvailable: semver.Compare(latest, cur) > 0,
	}, nil
}

// canonical prefixes a bare version with "v" as semver requires.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
