package extractor

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"sjsage522/prodlink/pkg/errors"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"
)

// Registry maps hostnames to site profiles. Profiles are matched in
// registration order, so more specific host tokens must come first.
// A Registry is never modified after NewRegistry returns.
type Registry struct {
	profiles []SiteProfile
}

// NewRegistry validates profiles and builds a registry from a copy of them
func NewRegistry(profiles []SiteProfile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, errors.NewConfiguration("no site profiles configured", nil)
	}

	copied := make([]SiteProfile, 0, len(profiles))
	for i, profile := range profiles {
		if err := validateProfile(profile); err != nil {
			return nil, errors.NewConfiguration(fmt.Sprintf("site profile %d (%q)", i, profile.Host), err)
		}
		profile.Host = strings.ToLower(strings.TrimSpace(profile.Host))
		profile.Title = cloneCandidate(profile.Title)
		profile.Price = cloneCandidate(profile.Price)
		profile.OldPrice = cloneCandidate(profile.OldPrice)
		profile.Image = cloneCandidate(profile.Image)
		profile.Currency = cloneCandidate(profile.Currency)
		profile.Description = cloneCandidate(profile.Description)
		copied = append(copied, profile)
	}

	return &Registry{profiles: copied}, nil
}

func validateProfile(profile SiteProfile) error {
	if strings.TrimSpace(profile.Host) == "" {
		return fmt.Errorf("host token is empty")
	}

	required := []struct {
		field     string
		candidate Candidate
	}{
		{"title", profile.Title},
		{"price", profile.Price},
		{"image", profile.Image},
	}
	for _, r := range required {
		if len(nonEmpty(r.candidate)) == 0 {
			return fmt.Errorf("%s has no selectors", r.field)
		}
	}

	all := []Candidate{profile.Title, profile.Price, profile.OldPrice, profile.Image, profile.Currency, profile.Description}
	for _, candidate := range all {
		for _, selector := range nonEmpty(candidate) {
			if _, err := cascadia.ParseGroup(selector); err != nil {
				return fmt.Errorf("invalid selector %q: %w", selector, err)
			}
		}
	}
	return nil
}

func nonEmpty(candidate Candidate) []string {
	var selectors []string
	for _, selector := range candidate {
		if strings.TrimSpace(selector) != "" {
			selectors = append(selectors, selector)
		}
	}
	return selectors
}

func cloneCandidate(candidate Candidate) Candidate {
	if candidate == nil {
		return nil
	}
	return append(Candidate(nil), candidate...)
}

// Resolve returns the first profile whose host token is contained in hostname.
// A leading "www." label is ignored.
func (r *Registry) Resolve(hostname string) (SiteProfile, bool) {
	host := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hostname)), "www.")
	if host == "" {
		return SiteProfile{}, false
	}
	for _, profile := range r.profiles {
		if strings.Contains(host, profile.Host) {
			return profile, true
		}
	}
	return SiteProfile{}, false
}

// Hosts returns the registered host tokens in match order
func (r *Registry) Hosts() []string {
	hosts := make([]string, 0, len(r.profiles))
	for _, profile := range r.profiles {
		hosts = append(hosts, profile.Host)
	}
	return hosts
}

// NormalizeHost returns the lowercase hostname of rawURL without port and
// without a leading "www." label
func NormalizeHost(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

type profileFile struct {
	Profiles []SiteProfile `yaml:"profiles"`
}

// LoadProfiles reads an ordered profile table from a YAML file
func LoadProfiles(path string) ([]SiteProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfiguration(fmt.Sprintf("failed to read site profiles %s", path), err)
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes an ordered profile table from YAML
func ParseProfiles(data []byte) ([]SiteProfile, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewConfiguration("failed to decode site profiles", err)
	}
	if len(file.Profiles) == 0 {
		return nil, errors.NewConfiguration("site profiles file lists no profiles", nil)
	}
	return file.Profiles, nil
}
