package client

import "testing"

func TestBuildWSURL(t *testing.T) {
	cases := []struct {
		origin, room string
		opts         JoinOptions
		want         string
	}{
		{"http://localhost:8080", "alpha", JoinOptions{}, "ws://localhost:8080/ws?room=alpha"},
		{"https://game.example.com", "alpha", JoinOptions{}, "wss://game.example.com/ws?room=alpha"},
		{"localhost:8080", "alpha", JoinOptions{}, "ws://localhost:8080/ws?room=alpha"},
		{"https://game.example.com/lobby?x=1", "a b&c", JoinOptions{MapW: 8000, MapH: 4500},
			"wss://game.example.com/ws?room=a+b%26c&mapW=8000&mapH=4500"},
		{"http://h", "r", JoinOptions{Mode: "campaign", Mission: "1"}, "ws://h/ws?room=r&mode=campaign&mission=1"},
		{"ws://h", "r", JoinOptions{MapH: 100}, "ws://h/ws?room=r&mapH=100"},
	}
	for _, tc := range cases {
		got, err := BuildWSURL(tc.origin, tc.room, tc.opts)
		if err != nil {
			t.Errorf("BuildWSURL(%q): %v", tc.origin, err)
			continue
		}
		if got != tc.want {
			t.Errorf("BuildWSURL(%q, %q) = %q, want %q", tc.origin, tc.room, got, tc.want)
		}
	}
}

func TestBuildWSURLErrors(t *testing.T) {
	for _, origin := range []string{"", "ftp://host", "http://"} {
		if _, err := BuildWSURL(origin, "r", JoinOptions{}); err == nil {
			t.Errorf("Expected error for origin %q", origin)
		}
	}
}
