package client

import (
	"context"
	"path/filepath"
	"testing"

	"LightSpeedDuelClient/internal/bus"
)

func TestLogEventsSubscribes(t *testing.T) {
	b := bus.New(quietLogger)
	logEvents(b)
	for _, name := range []bus.EventName{
		bus.ConnectionOpen, bus.ConnectionClosed, bus.ConnectionError, bus.DagList,
		bus.RouteAdded, bus.RouteDeleted, bus.RouteRenamed, bus.ActiveRouteChange,
		bus.MissileLaunched, bus.StoryNodeActive,
	} {
		if b.Handlers(name) != 1 {
			t.Errorf("Expected one handler for %s, got %d", name, b.Handlers(name))
		}
	}
}

func TestStartAppBadOrigin(t *testing.T) {
	origin := "ftp://nowhere"
	err := StartApp(context.Background(), AppConfig{
		ConfigPath: filepath.Join(t.TempDir(), "none.yaml"),
		Overrides:  ConfigOverrides{Origin: &origin},
	})
	if err == nil {
		t.Fatal("Expected error for unsupported origin scheme")
	}
}
