package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"LightSpeedDuelClient/internal/bus"
	"LightSpeedDuelClient/internal/game"
	pb "LightSpeedDuelClient/internal/proto/ws"

	"github.com/gorilla/websocket"
)

var quietLogger = log.New(io.Discard, "", 0)

func mustMarshal(t *testing.T, env *pb.WsEnvelope) []byte {
	t.Helper()
	data, err := pb.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

// startTestServer runs handler for the first WebSocket client and returns the
// ws:// URL to dial.
func startTestServer(t *testing.T, handler func(conn *websocket.Conn)) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
	var zero T
	return zero
}

func TestManagerEndToEnd(t *testing.T) {
	frames := [][]byte{
		{0x0a, 0xff}, // truncated length
		mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_StateUpdate{StateUpdate: &pb.StateUpdate{
			Now:           5,
			Me:            &pb.Ghost{Id: "me", Self: true},
			MissileRoutes: []*pb.MissileRoute{pbRoute("r1", "Alpha", 2)},
		}}}),
		mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_RoomFull{RoomFull: &pb.RoomFullError{Message: "room is full"}}}),
		mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_DagListResponse{DagListResponse: &pb.DagListResponse{
			Dag: &pb.DagState{Nodes: []*pb.DagNode{{Id: "craft.missile.basic", Kind: pb.DagNodeKind_DAG_NODE_KIND_FACTORY}}},
		}}}),
	}

	joined := make(chan *pb.ClientJoin, 1)
	serverDone := make(chan struct{})

	url := startTestServer(t, func(conn *websocket.Conn) {
		defer close(serverDone)
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Errorf("read join: %v", err)
			return
		}
		var env pb.WsEnvelope
		if err := pb.Unmarshal(data, &env); err != nil {
			t.Errorf("decode join: %v", err)
			return
		}
		if p, ok := env.Payload.(*pb.WsEnvelope_Join); ok {
			joined <- p.Join
		}

		_ = conn.WriteMessage(websocket.TextMessage, []byte("hello"))
		for _, frame := range frames {
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				t.Errorf("write: %v", err)
				return
			}
		}
		// Drain until the client closes.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	b := bus.New(quietLogger)
	opened := make(chan struct{}, 1)
	updated := make(chan struct{}, 4)
	roomFull := make(chan string, 1)
	dagList := make(chan bus.DagListEvent, 1)
	b.On(bus.ConnectionOpen, func(any) { opened <- struct{}{} })
	b.On(bus.StateUpdated, func(any) { updated <- struct{}{} })
	bus.On(b, bus.ConnectionError, func(ev bus.ConnectionErrorEvent) { roomFull <- ev.Message })
	bus.On(b, bus.DagList, func(ev bus.DagListEvent) { dagList <- ev })

	m := NewManager(Options{
		URL:    url,
		Room:   "alpha",
		Join:   JoinOptions{MapW: 8000, MapH: 4500},
		Bus:    b,
		Logger: quietLogger,
		OnOpen: func(m *Manager) { m.JoinRoom("Ace") },
	})
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	waitFor(t, opened, "connection:open")
	if m.Status() != StateOpen {
		t.Fatalf("Expected open status, got %v", m.Status())
	}

	join := waitFor(t, joined, "join command")
	if join.Name != "Ace" || join.Room != "alpha" || join.MapW != 8000 || join.MapH != 4500 {
		t.Errorf("Unexpected join: %+v", join)
	}

	waitFor(t, updated, "state:updated")
	if msg := waitFor(t, roomFull, "connection:error"); msg != "room is full" {
		t.Errorf("Expected server message, got %q", msg)
	}
	ev := waitFor(t, dagList, "dag:list")
	if len(ev.Nodes) != 1 || ev.Nodes[0].ID != "craft.missile.basic" {
		t.Errorf("Unexpected dag list: %+v", ev.Nodes)
	}
	if m.Status() != StateOpen {
		t.Errorf("Room full and malformed frames should not close the socket, status %v", m.Status())
	}

	m.WithState(func(state *game.AppState) {
		if state.ActiveMissileRouteID != "r1" || len(state.MissileRoutes) != 1 {
			t.Errorf("Snapshot not applied: active=%q routes=%+v", state.ActiveMissileRouteID, state.MissileRoutes)
		}
		if state.Dag != nil {
			t.Errorf("Dag list response must not touch state, got %+v", state.Dag)
		}
	})

	if err := m.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	waitFor(t, m.Done(), "read loop exit")
	waitFor(t, serverDone, "server handler exit")
	if m.Status() != StateClosed {
		t.Errorf("Expected closed status, got %v", m.Status())
	}

	// Commands on a closed socket are dropped.
	m.LaunchMissile("r1")
	if err := m.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestManagerServerGoesAway(t *testing.T) {
	url := startTestServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
	})

	b := bus.New(quietLogger)
	closed := make(chan bus.ConnectionClosedEvent, 2)
	bus.On(b, bus.ConnectionClosed, func(ev bus.ConnectionClosedEvent) { closed <- ev })

	m := NewManager(Options{URL: url, Bus: b, Logger: quietLogger})
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	ev := waitFor(t, closed, "connection:closed")
	if ev.Err != nil {
		t.Errorf("Going-away close should be clean, got %v", ev.Err)
	}
	waitFor(t, m.Done(), "read loop exit")
	if m.Status() != StateClosed {
		t.Errorf("Expected closed status, got %v", m.Status())
	}
}

func TestManagerContextCancelCloses(t *testing.T) {
	url := startTestServer(t, func(conn *websocket.Conn) {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(Options{URL: url, Logger: quietLogger})
	if err := m.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	cancel()
	waitFor(t, m.Done(), "read loop exit")
	if m.Status() != StateClosed {
		t.Errorf("Expected closed status, got %v", m.Status())
	}
}

func TestManagerDialFailure(t *testing.T) {
	b := bus.New(quietLogger)
	closed := make(chan bus.ConnectionClosedEvent, 1)
	bus.On(b, bus.ConnectionClosed, func(ev bus.ConnectionClosedEvent) { closed <- ev })

	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	srv.Close()

	m := NewManager(Options{URL: url, Bus: b, Logger: quietLogger})
	if err := m.Connect(context.Background()); err == nil {
		t.Fatal("Expected dial error")
	}
	if ev := waitFor(t, closed, "connection:closed"); ev.Err == nil {
		t.Error("Expected dial error on the closed event")
	}
	waitFor(t, m.Done(), "done")
	if err := m.Connect(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Expected ErrAlreadyStarted, got %v", err)
	}
}

func TestManagerDropsCommandsBeforeConnect(t *testing.T) {
	m := NewManager(Options{URL: "ws://127.0.0.1:1/ws", Logger: quietLogger})
	m.AddMissileRoute("Alpha")
	m.ConfigureMissile(200, 800)
	if m.Status() != StateIdle {
		t.Errorf("Sending while idle should not change status, got %v", m.Status())
	}
	if err := m.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	waitFor(t, m.Done(), "done")
}

func TestHandleFrameLogsAndDrops(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(Options{URL: "ws://unused", Logger: log.New(&buf, "", 0)})

	for i := 0; i < 20; i++ {
		m.HandleFrame([]byte{0x0a, 0xff})
	}
	if n := strings.Count(buf.String(), "dropping malformed frame"); n == 0 || n > 6 {
		t.Errorf("Expected throttled decode logging, got %d", n)
	}

	buf.Reset()
	m.HandleFrame(mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_SpawnBot{SpawnBot: &pb.SpawnBot{}}}))
	if !strings.Contains(buf.String(), "unknown protobuf payload type") {
		t.Errorf("Expected unknown payload warning, got %q", buf.String())
	}

	m.WithState(func(state *game.AppState) {
		if state.Now != 0 || len(state.MissileRoutes) != 0 {
			t.Errorf("Dropped frames changed state: %+v", state)
		}
	})
}

func TestHandleFrameOnUpdate(t *testing.T) {
	var calls int
	m := NewManager(Options{
		URL:      "ws://unused",
		Logger:   quietLogger,
		OnUpdate: func(state *game.AppState) { calls++ },
	})
	m.HandleFrame(mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_StateUpdate{StateUpdate: &pb.StateUpdate{Now: 3}}}))
	if calls != 1 {
		t.Errorf("Expected one OnUpdate call, got %d", calls)
	}
	m.WithState(func(state *game.AppState) {
		if state.Now != 3 {
			t.Errorf("Expected now 3, got %v", state.Now)
		}
	})
}
