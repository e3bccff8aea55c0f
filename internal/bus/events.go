package bus

import "LightSpeedDuelClient/internal/dag"

// EventName identifies a bus event.
type EventName string

const (
	StateUpdated      EventName = "state:updated"
	ConnectionOpen    EventName = "connection:open"
	ConnectionClosed  EventName = "connection:closed"
	ConnectionError   EventName = "connection:error"
	DagList           EventName = "dag:list"
	RouteAdded        EventName = "missile:routeAdded"
	RouteDeleted      EventName = "missile:routeDeleted"
	RouteRenamed      EventName = "missile:routeRenamed"
	ActiveRouteChange EventName = "missile:activeRouteChanged"
	WaypointAdded     EventName = "missile:waypointAdded"
	WaypointDeleted   EventName = "missile:waypointDeleted"
	WaypointsCleared  EventName = "missile:waypointsCleared"
	MissileLaunched   EventName = "missile:launched"
	CooldownUpdated   EventName = "missile:cooldownUpdated"
	StoryNodeActive   EventName = "story:nodeActivated"
)

type ConnectionErrorEvent struct {
	Message string
}

type ConnectionClosedEvent struct {
	Err error // nil on a clean close
}

type DagListEvent struct {
	Nodes []dag.Node
}

type RouteEvent struct {
	RouteID string
}

type RouteRenamedEvent struct {
	RouteID string
	Name    string
}

// ActiveRouteChangedEvent carries the new active route id, "" when none.
type ActiveRouteChangedEvent struct {
	RouteID string
}

type WaypointEvent struct {
	RouteID string
	Index   int
}

type MissileLaunchedEvent struct {
	RouteID   string
	MissileID string
}

type CooldownEvent struct {
	SecondsRemaining float64
}

type StoryNodeActivatedEvent struct {
	NodeID   string
	Dialogue *dag.Dialogue
}
