package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"LightSpeedDuelClient/internal/bus"
	"LightSpeedDuelClient/internal/game"
	pb "LightSpeedDuelClient/internal/proto/ws"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// ConnState is the lifecycle of a Manager. A Manager moves forward only.
type ConnState int

const (
	StateIdle ConnState = iota
	StateConnecting
	StateOpen
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyStarted is returned by Connect on a Manager that has already dialed.
	ErrAlreadyStarted   = errors.New("client: connection already started")
	errClosedDuringDial = errors.New("client: closed before connect completed")
)

// Options configures a Manager. Only URL is required.
type Options struct {
	URL      string
	Room     string
	Join     JoinOptions // map size sent with JoinRoom
	Bus      *bus.Bus
	Clock    game.Clock
	Logger   *log.Logger
	Dialer   *websocket.Dialer
	OnOpen   func(m *Manager)
	OnUpdate func(state *game.AppState) // runs under the state lock after every snapshot
}

// Manager owns one WebSocket connection to the game server and the AppState
// mirrored from it. Frames are applied strictly in arrival order by a single
// read goroutine.
type Manager struct {
	url      string
	room     string
	join     JoinOptions
	dialer   *websocket.Dialer
	bus      *bus.Bus
	clock    game.Clock
	logger   *log.Logger
	onOpen   func(*Manager)
	onUpdate func(*game.AppState)

	// decodeLog throttles malformed-frame logging; frames are dropped either way.
	decodeLog *rate.Limiter

	mu    sync.Mutex // guards state; held for the whole dispatch of a frame
	state *game.AppState

	connMu sync.Mutex // guards conn and status
	conn   *websocket.Conn
	status ConnState
	done   chan struct{}

	writeMu sync.Mutex // gorilla allows one concurrent writer
}

func NewManager(opts Options) *Manager {
	m := &Manager{
		url:       opts.URL,
		room:      opts.Room,
		join:      opts.Join,
		dialer:    opts.Dialer,
		bus:       opts.Bus,
		clock:     opts.Clock,
		logger:    opts.Logger,
		onOpen:    opts.OnOpen,
		onUpdate:  opts.OnUpdate,
		decodeLog: rate.NewLimiter(rate.Every(time.Second), 5),
		state:     game.NewAppState(),
		done:      make(chan struct{}),
	}
	if m.dialer == nil {
		m.dialer = websocket.DefaultDialer
	}
	if m.bus == nil {
		m.bus = bus.New(opts.Logger)
	}
	if m.clock == nil {
		m.clock = game.MonotonicClock
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	return m
}

func (m *Manager) Bus() *bus.Bus     { return m.bus }
func (m *Manager) Clock() game.Clock { return m.clock }

// Status reports where the connection is in its lifecycle.
func (m *Manager) Status() ConnState {
	m.connMu.Lock()
	defer m.connMu.Unlock()
	return m.status
}

// Done is closed once the read loop has exited, or when a Manager that never
// opened is closed.
func (m *Manager) Done() <-chan struct{} { return m.done }

// WithState runs fn with exclusive access to the mirrored state. It must not
// be called from bus handlers or OnUpdate, which already run under the lock.
func (m *Manager) WithState(fn func(state *game.AppState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}

// Connect dials the server and starts the read loop. The connection lives
// until ctx is cancelled, Close is called, or the server goes away.
func (m *Manager) Connect(ctx context.Context) error {
	m.connMu.Lock()
	if m.status != StateIdle {
		m.connMu.Unlock()
		return ErrAlreadyStarted
	}
	m.status = StateConnecting
	m.connMu.Unlock()

	conn, _, err := m.dialer.DialContext(ctx, m.url, nil)
	if err != nil {
		m.connMu.Lock()
		m.status = StateClosed
		m.connMu.Unlock()
		close(m.done)
		err = fmt.Errorf("client: dial %s: %w", m.url, err)
		m.bus.Emit(bus.ConnectionClosed, bus.ConnectionClosedEvent{Err: err})
		return err
	}

	m.connMu.Lock()
	if m.status == StateClosed {
		// Close raced the dial.
		m.connMu.Unlock()
		_ = conn.Close()
		close(m.done)
		return errClosedDuringDial
	}
	m.conn = conn
	m.status = StateOpen
	m.connMu.Unlock()

	m.logger.Printf("client: connected to %s", m.url)
	m.bus.Emit(bus.ConnectionOpen, nil)
	if m.onOpen != nil {
		m.onOpen(m)
	}

	go m.readLoop(conn)
	go func() {
		select {
		case <-ctx.Done():
			_ = m.Close()
		case <-m.done:
		}
	}()
	return nil
}

func (m *Manager) readLoop(conn *websocket.Conn) {
	defer close(m.done)
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			m.finish(err)
			return
		}
		if mt != websocket.BinaryMessage {
			m.logger.Printf("client: ignoring non-binary frame (type %d, %d bytes)", mt, len(data))
			continue
		}
		m.HandleFrame(data)
	}
}

// finish moves an open connection to Closed after a transport failure.
func (m *Manager) finish(err error) {
	m.connMu.Lock()
	if m.status == StateClosed {
		m.connMu.Unlock()
		return
	}
	m.status = StateClosed
	conn := m.conn
	m.connMu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		err = nil
	}
	if err != nil {
		m.logger.Printf("client: connection lost: %v", err)
	}
	m.bus.Emit(bus.ConnectionClosed, bus.ConnectionClosedEvent{Err: err})
}

// Close stops dispatch and closes the socket. It is safe to call more than
// once and from any goroutine, including bus handlers.
func (m *Manager) Close() error {
	m.connMu.Lock()
	prev := m.status
	if prev == StateClosed {
		m.connMu.Unlock()
		return nil
	}
	m.status = StateClosed
	conn := m.conn
	m.connMu.Unlock()

	if prev == StateIdle {
		close(m.done)
	}
	var err error
	if conn != nil {
		m.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		m.writeMu.Unlock()
		err = conn.Close()
	}
	m.bus.Emit(bus.ConnectionClosed, bus.ConnectionClosedEvent{})
	return err
}

// HandleFrame decodes and dispatches one binary frame. Malformed frames are
// logged and dropped without affecting the connection.
func (m *Manager) HandleFrame(data []byte) {
	var envelope pb.WsEnvelope
	if err := pb.Unmarshal(data, &envelope); err != nil {
		if m.decodeLog.Allow() {
			m.logger.Printf("client: dropping malformed frame (%d bytes): %v", len(data), err)
		}
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatch(&envelope)
}

func (m *Manager) dispatch(envelope *pb.WsEnvelope) {
	switch payload := envelope.Payload.(type) {
	case *pb.WsEnvelope_StateUpdate:
		m.handleStateUpdate(payload.StateUpdate)

	case *pb.WsEnvelope_RoomFull:
		msg := ""
		if payload.RoomFull != nil {
			msg = payload.RoomFull.Message
		}
		m.bus.Emit(bus.ConnectionError, bus.ConnectionErrorEvent{Message: msg})

	case *pb.WsEnvelope_DagListResponse:
		var state *pb.DagState
		if payload.DagListResponse != nil {
			state = payload.DagListResponse.Dag
		}
		m.bus.Emit(bus.DagList, bus.DagListEvent{Nodes: dagNodesFromProto(state)})

	case nil:
		m.logger.Printf("client: frame carried no known payload")

	default:
		m.logger.Printf("unknown protobuf payload type: %T", payload)
	}
}

func (m *Manager) handleStateUpdate(msg *pb.StateUpdate) {
	if msg == nil {
		return
	}
	prevRoutes := CaptureRouteCache(m.state)
	prevActive := m.state.ActiveMissileRouteID
	prevCount := len(m.state.Missiles)

	ApplySnapshot(m.state, msg, prevRoutes, prevActive, prevCount, m.bus, m.clock)
	m.bus.Emit(bus.StateUpdated, nil)
	if m.onUpdate != nil {
		m.onUpdate(m.state)
	}
}

// send encodes envelope and writes it as one binary frame. Commands issued
// while the socket is not open are dropped.
func (m *Manager) send(envelope *pb.WsEnvelope) {
	m.connMu.Lock()
	conn, open := m.conn, m.status == StateOpen
	m.connMu.Unlock()
	if !open || conn == nil {
		return
	}

	data, err := pb.Marshal(envelope)
	if err != nil {
		m.logger.Printf("client: marshal %T: %v", envelope.Payload, err)
		return
	}

	m.writeMu.Lock()
	err = conn.WriteMessage(websocket.BinaryMessage, data)
	m.writeMu.Unlock()
	if err != nil {
		m.logger.Printf("client: send %T: %v", envelope.Payload, err)
		m.finish(err)
	}
}
