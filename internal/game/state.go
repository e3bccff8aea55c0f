package game

import (
	"math"

	"LightSpeedDuelClient/internal/dag"
)

// AppState is the client's mirror of the server world. It is owned by a single
// goroutine at a time; see client.Manager.
type AppState struct {
	Now                  float64           `json:"now"` // last server simulation time, seconds
	NowSyncedAt          float64           `json:"-"`   // monotonic ms at which Now was received; NaN until synced
	Me                   *Ghost            `json:"me,omitempty"`
	Ghosts               []Ghost           `json:"ghosts"`
	Missiles             []Missile         `json:"missiles"`
	MissileRoutes        []MissileRoute    `json:"missile_routes"`
	ActiveMissileRouteID string            `json:"active_missile_route_id,omitempty"` // "" when no route is active
	NextMissileReadyAt   float64           `json:"next_missile_ready_at"`
	MissileConfig        MissileConfig     `json:"missile_config"`
	MissileLimits        MissileLimits     `json:"missile_limits"`
	WorldMeta            WorldMeta         `json:"world_meta"`
	Inventory            *Inventory        `json:"inventory,omitempty"`
	Dag                  *dag.NodeList     `json:"dag,omitempty"`
	Story                *StoryState       `json:"story,omitempty"`
	Capabilities         *dag.Capabilities `json:"capabilities,omitempty"`
}

// NewAppState returns the state used before the first snapshot arrives.
func NewAppState() *AppState {
	return &AppState{
		Now:           0,
		NowSyncedAt:   math.NaN(),
		MissileConfig: DefaultMissileConfig(),
		MissileLimits: DefaultMissileLimits(),
		WorldMeta:     WorldMeta{C: C, W: WorldW, H: WorldH},
	}
}

type Waypoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

func (w Waypoint) Pos() Vec2 { return Vec2{w.X, w.Y} }

type MissileRoute struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Waypoints []Waypoint `json:"waypoints"`
}

// Clone returns a copy that shares no waypoint storage with r.
func (r MissileRoute) Clone() MissileRoute {
	r.Waypoints = append([]Waypoint(nil), r.Waypoints...)
	return r
}

// MissileRouteByID returns the route with id, or nil.
func (s *AppState) MissileRouteByID(id string) *MissileRoute {
	if id == "" {
		return nil
	}
	for i := range s.MissileRoutes {
		if s.MissileRoutes[i].ID == id {
			return &s.MissileRoutes[i]
		}
	}
	return nil
}

// ActiveMissileRoute returns the active route, or nil when none is active.
func (s *AppState) ActiveMissileRoute() *MissileRoute {
	return s.MissileRouteByID(s.ActiveMissileRouteID)
}

// HeatView is a server heat record translated for display. StallUntilMs is on
// the same monotonic clock as AppState.NowSyncedAt.
type HeatView struct {
	Value        float64 `json:"value"`
	Max          float64 `json:"max"`
	WarnAt       float64 `json:"warn_at"`
	OverheatAt   float64 `json:"overheat_at"`
	MarkerSpeed  float64 `json:"marker_speed"`
	StallUntilMs float64 `json:"stall_until_ms"`
	KUp          float64 `json:"k_up"`
	KDown        float64 `json:"k_down"`
	Exp          float64 `json:"exp"`
}

type Ghost struct {
	ID                   string     `json:"id"`
	X                    float64    `json:"x"`
	Y                    float64    `json:"y"`
	VX                   float64    `json:"vx"`
	VY                   float64    `json:"vy"`
	T                    float64    `json:"t"`
	Self                 bool       `json:"self"`
	Waypoints            []Waypoint `json:"waypoints,omitempty"`
	CurrentWaypointIndex int        `json:"current_waypoint_index"`
	HP                   int        `json:"hp"`
	Kills                int        `json:"kills"`
	Heat                 *HeatView  `json:"heat,omitempty"`
}

type Missile struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	Self       bool      `json:"self"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	VX         float64   `json:"vx"`
	VY         float64   `json:"vy"`
	T          float64   `json:"t"`
	AgroRadius float64   `json:"agro_radius"`
	Lifetime   float64   `json:"lifetime"`
	LaunchTime float64   `json:"launch"`
	ExpiresAt  float64   `json:"expires"`
	TargetID   string    `json:"target_id,omitempty"`
	Heat       *HeatView `json:"heat,omitempty"`
}

type WorldMeta struct {
	C float64 `json:"c"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type StoryEvent struct {
	ChapterID string  `json:"chapter"`
	NodeID    string  `json:"node"`
	Timestamp float64 `json:"timestamp"`
}

type StoryState struct {
	ActiveNode   string          `json:"active_node,omitempty"`
	Dialogue     *dag.Dialogue   `json:"dialogue,omitempty"`
	Available    []string        `json:"available,omitempty"`
	Flags        map[string]bool `json:"flags,omitempty"`
	RecentEvents []StoryEvent    `json:"recent_events,omitempty"`
}

// Clone returns a deep copy of the state, safe to hand to another goroutine.
func (s *AppState) Clone() *AppState {
	c := *s
	if s.Me != nil {
		me := s.Me.clone()
		c.Me = &me
	}
	c.Ghosts = make([]Ghost, len(s.Ghosts))
	for i, g := range s.Ghosts {
		c.Ghosts[i] = g.clone()
	}
	c.Missiles = make([]Missile, len(s.Missiles))
	for i, m := range s.Missiles {
		if m.Heat != nil {
			h := *m.Heat
			m.Heat = &h
		}
		c.Missiles[i] = m
	}
	c.MissileRoutes = make([]MissileRoute, len(s.MissileRoutes))
	for i, r := range s.MissileRoutes {
		c.MissileRoutes[i] = r.Clone()
	}
	if s.MissileConfig.HeatParams != nil {
		hp := *s.MissileConfig.HeatParams
		c.MissileConfig.HeatParams = &hp
	}
	c.Inventory = s.Inventory.clone()
	if s.Dag != nil {
		c.Dag = s.Dag.Clone()
	}
	if s.Story != nil {
		story := *s.Story
		story.Available = append([]string(nil), s.Story.Available...)
		story.RecentEvents = append([]StoryEvent(nil), s.Story.RecentEvents...)
		if s.Story.Flags != nil {
			story.Flags = make(map[string]bool, len(s.Story.Flags))
			for k, v := range s.Story.Flags {
				story.Flags[k] = v
			}
		}
		c.Story = &story
	}
	if s.Capabilities != nil {
		caps := *s.Capabilities
		caps.UnlockedMissiles = append([]string(nil), s.Capabilities.UnlockedMissiles...)
		c.Capabilities = &caps
	}
	return &c
}

func (g Ghost) clone() Ghost {
	g.Waypoints = append([]Waypoint(nil), g.Waypoints...)
	if g.Heat != nil {
		h := *g.Heat
		g.Heat = &h
	}
	return g
}
