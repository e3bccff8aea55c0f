package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// JoinOptions are the optional query parameters of the WebSocket URL.
type JoinOptions struct {
	MapW    int
	MapH    int
	Mode    string
	Mission string
}

// BuildWSURL turns a page origin such as "https://host:8080" into the game
// socket URL for room. Zero map sizes and empty strings are left out.
func BuildWSURL(origin, room string, opts JoinOptions) (string, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return "", fmt.Errorf("client: empty origin")
	}
	if !strings.Contains(origin, "://") {
		origin = "http://" + origin
	}
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("client: parse origin %q: %w", origin, err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("client: unsupported origin scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("client: origin %q has no host", origin)
	}

	// Parameters are written in a fixed order rather than through
	// url.Values, which sorts keys.
	var q strings.Builder
	add := func(key, value string) {
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(key)
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(value))
	}
	add("room", room)
	if opts.MapW > 0 {
		add("mapW", strconv.Itoa(opts.MapW))
	}
	if opts.MapH > 0 {
		add("mapH", strconv.Itoa(opts.MapH))
	}
	if opts.Mode != "" {
		add("mode", opts.Mode)
	}
	if opts.Mission != "" {
		add("mission", opts.Mission)
	}

	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/ws", RawQuery: q.String()}).String(), nil
}
