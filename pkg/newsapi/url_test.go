package newsapi

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestBuildURLForEveryEnumPair(t *testing.T) {
	for _, e := range []Endpoint{TopHeadlines} {
		for _, c := range []Country{CountryIN} {
			raw, err := buildURL(DefaultBaseURL, e, c)
			if err != nil {
				t.Fatalf("buildURL(%s, %s): %v", e, c, err)
			}
			u, err := url.Parse(raw)
			if err != nil {
				t.Fatalf("parse built url %q: %v", raw, err)
			}
			if !strings.HasSuffix(u.Path, "/"+e.String()) {
				t.Errorf("path %q does not end in /%s", u.Path, e)
			}
			if u.RawQuery != "country="+c.String() {
				t.Errorf("query = %q, want country=%s", u.RawQuery, c)
			}
		}
	}
}

func TestBuildURLDefault(t *testing.T) {
	got, err := buildURL(DefaultBaseURL, TopHeadlines, CountryIN)
	if err != nil {
		t.Fatalf("buildURL: %v", err)
	}
	if want := "https://newsapi.org/v2/top-headlines?country=in"; got != want {
		t.Fatalf("buildURL = %q, want %q", got, want)
	}
}

func TestBuildURLTrailingSlashBase(t *testing.T) {
	got, err := buildURL("http://127.0.0.1:8080/v2/", TopHeadlines, CountryIN)
	if err != nil {
		t.Fatalf("buildURL: %v", err)
	}
	if want := "http://127.0.0.1:8080/v2/top-headlines?country=in"; got != want {
		t.Fatalf("buildURL = %q, want %q", got, want)
	}
}

func TestBuildURLRejectsBadInput(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		endpoint Endpoint
		country  Country
	}{
		{name: "unparseable base", base: "http://[::1", endpoint: TopHeadlines, country: CountryIN},
		{name: "relative base", base: "v2/news", endpoint: TopHeadlines, country: CountryIN},
		{name: "unknown endpoint", base: DefaultBaseURL, endpoint: Endpoint(42), country: CountryIN},
		{name: "unknown country", base: DefaultBaseURL, endpoint: TopHeadlines, country: Country(42)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildURL(tc.base, tc.endpoint, tc.country)
			if !errors.Is(err, ErrURLBuild) {
				t.Fatalf("expected ErrURLBuild, got %v", err)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if TopHeadlines.String() != "top-headlines" {
		t.Errorf("TopHeadlines = %q", TopHeadlines.String())
	}
	if CountryIN.String() != "in" {
		t.Errorf("CountryIN = %q", CountryIN.String())
	}
}
