package client

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"LightSpeedDuelClient/internal/bus"
	"LightSpeedDuelClient/internal/dag"
)

type AppConfig struct {
	ConfigPath string
	EnvFile    string
	Overrides  ConfigOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		ConfigPath: "configs/client.yaml",
		EnvFile:    ".env",
	}
}

// resolveConfig layers defaults, the YAML file, the environment and flags,
// in that order. Unreadable files are logged and skipped.
func resolveConfig(app AppConfig, lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()
	loaded, err := loadConfigFromFile(app.ConfigPath, cfg)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	} else {
		cfg = loaded
	}
	if err := loadDotEnv(app.EnvFile); err != nil {
		log.Printf("config: %v", err)
	}
	cfg = applyEnv(cfg, lookup)
	cfg = app.Overrides.apply(cfg)
	return cfg.Sanitize()
}

// StartApp connects to the configured room and runs until ctx is cancelled
// or the server closes the connection.
func StartApp(ctx context.Context, app AppConfig) error {
	cfg := resolveConfig(app, os.LookupEnv)

	join := JoinOptions{MapW: cfg.MapW, MapH: cfg.MapH, Mode: cfg.Mode, Mission: cfg.Mission}
	wsURL, err := BuildWSURL(cfg.Origin, cfg.Room, join)
	if err != nil {
		return err
	}

	b := bus.New(nil)
	if cfg.LogEvents {
		logEvents(b)
	}
	m := NewManager(Options{
		URL:  wsURL,
		Room: cfg.Room,
		Join: join,
		Bus:  b,
		OnOpen: func(m *Manager) {
			m.JoinRoom(cfg.Name)
			m.RequestDagList()
		},
	})

	var status *http.Server
	if cfg.StatusAddr != "" {
		status = &http.Server{Addr: cfg.StatusAddr, Handler: NewStatusHandler(m)}
		go func() {
			log.Printf("status server listening on %s", cfg.StatusAddr)
			if err := status.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("status server: %v", err)
			}
		}()
	}

	log.Printf("joining room %q as %q via %s", cfg.Room, cfg.Name, wsURL)
	if err := m.Connect(ctx); err != nil {
		shutdownStatus(status)
		return err
	}

	timer := NewCooldownTimer(m, cfg.CooldownInterval)
	timer.Start(ctx)

	select {
	case <-ctx.Done():
	case <-m.Done():
	}
	timer.Stop()
	_ = m.Close()
	shutdownStatus(status)
	return nil
}

func shutdownStatus(s *http.Server) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("status server: shutdown: %v", err)
	}
}

// logEvents prints the events worth seeing in a terminal session.
func logEvents(b *bus.Bus) {
	b.On(bus.ConnectionOpen, func(any) { log.Printf("connection open") })
	bus.On(b, bus.ConnectionClosed, func(ev bus.ConnectionClosedEvent) {
		if ev.Err != nil {
			log.Printf("connection closed: %v", ev.Err)
			return
		}
		log.Printf("connection closed")
	})
	bus.On(b, bus.ConnectionError, func(ev bus.ConnectionErrorEvent) {
		log.Printf("server error: %s", ev.Message)
	})
	bus.On(b, bus.DagList, func(ev bus.DagListEvent) {
		log.Printf("tech tree: %d nodes", len(ev.Nodes))
		for _, node := range ev.Nodes {
			desc := dag.DescribeNode(node)
			if desc != "" {
				desc = " (" + desc + ")"
			}
			log.Printf("  %s [%s] %s%s", node.ID, node.Status, node.Label, desc)
		}
	})
	bus.On(b, bus.RouteAdded, func(ev bus.RouteEvent) { log.Printf("missile route %s added", ev.RouteID) })
	bus.On(b, bus.RouteDeleted, func(ev bus.RouteEvent) { log.Printf("missile route %s deleted", ev.RouteID) })
	bus.On(b, bus.RouteRenamed, func(ev bus.RouteRenamedEvent) {
		log.Printf("missile route %s renamed to %q", ev.RouteID, ev.Name)
	})
	bus.On(b, bus.ActiveRouteChange, func(ev bus.ActiveRouteChangedEvent) {
		log.Printf("active missile route: %s", displayID(ev.RouteID))
	})
	bus.On(b, bus.MissileLaunched, func(ev bus.MissileLaunchedEvent) {
		log.Printf("missile %s launched on route %s", ev.MissileID, displayID(ev.RouteID))
	})
	bus.On(b, bus.StoryNodeActive, func(ev bus.StoryNodeActivatedEvent) {
		if ev.Dialogue == nil {
			log.Printf("story: %s", ev.NodeID)
			return
		}
		log.Printf("story: %s: %s", ev.Dialogue.Speaker, ev.Dialogue.Text)
	})
}

func displayID(id string) string {
	if id == "" {
		return "(none)"
	}
	return id
}
