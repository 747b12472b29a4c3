package newsapi

import (
	"fmt"
	"net/url"
)

// DefaultBaseURL is the NewsAPI v2 root.
const DefaultBaseURL = "https://newsapi.org/v2"

// Endpoint selects the API query type.
type Endpoint int

const (
	TopHeadlines Endpoint = iota
)

func (e Endpoint) String() string {
	switch e {
	case TopHeadlines:
		return "top-headlines"
	default:
		return ""
	}
}

// Country restricts results to a region.
type Country int

const (
	CountryIN Country = iota
)

func (c Country) String() string {
	switch c {
	case CountryIN:
		return "in"
	default:
		return ""
	}
}

// buildURL composes <base>/<endpoint>?country=<code>.
func buildURL(base string, endpoint Endpoint, country Country) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", newError(KindURLBuild, fmt.Errorf("parse base url: %w", err))
	}
	if !u.IsAbs() || u.Host == "" {
		return "", newError(KindURLBuild, fmt.Errorf("base url %q is not absolute", base))
	}

	segment := endpoint.String()
	if segment == "" {
		return "", newError(KindURLBuild, fmt.Errorf("unsupported endpoint %d", int(endpoint)))
	}
	code := country.String()
	if code == "" {
		return "", newError(KindURLBuild, fmt.Errorf("unsupported country %d", int(country)))
	}

	u = u.JoinPath(segment)
	u.RawQuery = url.Values{"country": {code}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}
