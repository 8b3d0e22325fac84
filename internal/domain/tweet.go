// Package domain holds the entities, value types and errors shared by the
// tipping workflows and their adapters.
package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultAllowedHosts lists the hosts accepted for tweet URLs.
var DefaultAllowedHosts = []string{"x.com"}

// tweetIDPattern finds the numeric tweet id after a status path segment.
var tweetIDPattern = regexp.MustCompile(`(?:^|/)status/(\d+)`)

// TweetReference is a validated tweet URL.
type TweetReference struct {
	URL     string
	Host    string
	TweetID string
}

// ParseTweetReference validates raw against allowedHosts and extracts the
// tweet id from the URL path. Query strings and fragments are ignored.
//
//	https://x.com/RoochNetwork/status/1800000000000000 -> 1800000000000000
func ParseTweetReference(raw string, allowedHosts []string) (TweetReference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return TweetReference{}, ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return TweetReference{}, ErrInvalidURL
	}

	host := strings.ToLower(u.Hostname())
	if !hostAllowed(host, allowedHosts) {
		return TweetReference{}, fmt.Errorf("%w: host %q is not accepted", ErrInvalidURL, host)
	}

	id, ok := ExtractTweetID(u.Path)
	if !ok {
		return TweetReference{}, fmt.Errorf("%w: no status id", ErrInvalidURL)
	}

	return TweetReference{URL: raw, Host: host, TweetID: id}, nil
}

// ExtractTweetID returns the digits following the first "status/" segment
// in the URL path p.
func ExtractTweetID(p string) (string, bool) {
	m := tweetIDPattern.FindStringSubmatch(p)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func hostAllowed(host string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = DefaultAllowedHosts
	}
	for _, h := range allowed {
		if strings.EqualFold(host, h) {
			return true
		}
	}
	return false
}

// TweetPreview is what the tip page shows about the tweet being tipped.
type TweetPreview struct {
	TweetID string
	Author  Author
	Text    string
	Partial bool // some optional fields could not be read
}

// Author is the display identity of a tweet's author. It is not the
// on-chain author id the tip is sent to.
type Author struct {
	Name      string
	Handle    string
	AvatarURL string
}
