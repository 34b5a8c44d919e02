// Package stream turns the live-stream links attached to matches into URLs
// that can be played back inside an iframe.
package stream

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const youtubeEmbedURL = "https://www.youtube.com/embed/%s?autoplay=1"

var videoIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ResolveEmbedURL returns the embeddable form of a live-stream link and true,
// or an empty string and false when no video id can be extracted. Two link
// shapes are recognized: youtube.com/watch?v=<id> and youtu.be/<id>.
// Unparsable links are not an error, there is simply nothing to embed.
func ResolveEmbedURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	id := videoID(u)
	if id == "" || !videoIDRegex.MatchString(id) {
		return "", false
	}
	return fmt.Sprintf(youtubeEmbedURL, id), true
}

func videoID(u *url.URL) string {
	switch strings.ToLower(u.Hostname()) {
	case "youtube.com", "www.youtube.com", "m.youtube.com":
		if strings.TrimSuffix(u.Path, "/") != "/watch" {
			return ""
		}
		return u.Query().Get("v")
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	default:
		return ""
	}
}
