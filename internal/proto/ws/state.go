package ws

import (
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

type Waypoint struct {
	X     float64
	Y     float64
	Speed float64
}

type ShipHeatView struct {
	V  float64 // current heat value
	M  float64 // max heat
	W  float64 // warnAt threshold
	O  float64 // overheatAt threshold
	Ms float64 // markerSpeed
	Su float64 // stallUntil (server time seconds)
	Ku float64 // kUp (heating scale)
	Kd float64 // kDown (cooling scale)
	Ex float64 // exp (response exponent)
}

type Ghost struct {
	Id                   string
	X                    float64
	Y                    float64
	Vx                   float64
	Vy                   float64
	T                    float64
	Self                 bool
	Waypoints            []*Waypoint
	CurrentWaypointIndex int32
	Hp                   int32
	Kills                int32
	Heat                 *ShipHeatView
}

type Missile struct {
	Id         string
	Owner      string
	Self       bool
	X          float64
	Y          float64
	Vx         float64
	Vy         float64
	T          float64
	AgroRadius float64
	Lifetime   float64
	LaunchTime float64
	ExpiresAt  float64
	TargetId   string
	Heat       *ShipHeatView
}

type RoomMeta struct {
	C float64
	W float64
	H float64
}

// HeatParams fields are optional on the wire; nil means the server left it out.
type HeatParams struct {
	Max         *float64
	WarnAt      *float64
	OverheatAt  *float64
	MarkerSpeed *float64
	KUp         *float64
	KDown       *float64
	Exp         *float64
}

type MissileConfig struct {
	Speed      float64
	SpeedMin   float64
	SpeedMax   float64
	AgroMin    float64
	AgroRadius float64
	Lifetime   float64
	HeatConfig *HeatParams
}

type MissileRoute struct {
	Id        string
	Name      string
	Waypoints []*Waypoint
}

type InventoryItem struct {
	Type         string
	VariantId    string
	HeatCapacity float64
	Quantity     int32
}

type Inventory struct {
	Items []*InventoryItem
}

type PlayerCapabilities struct {
	ShipSpeedMultiplier    float64
	MissileSpeedMultiplier float64
	ShipHeatCapacity       float64
	MissileHeatCapacity    float64
	UnlockedMissiles       []string
}

type StateUpdate struct {
	Now                float64
	Me                 *Ghost
	Ghosts             []*Ghost
	Meta               *RoomMeta
	Missiles           []*Missile
	MissileConfig      *MissileConfig
	MissileWaypoints   []*Waypoint
	MissileRoutes      []*MissileRoute
	ActiveMissileRoute string
	NextMissileReady   float64
	Dag                *DagState
	Inventory          *Inventory
	Story              *StoryState
	Capabilities       *PlayerCapabilities
}

type RoomFullError struct {
	Message string
}

type DagListResponse struct {
	Dag *DagState
}

func appendWaypoints(b []byte, num protowire.Number, wps []*Waypoint) []byte {
	for _, wp := range wps {
		b = appendMessage(b, num, wp)
	}
	return b
}

func decodeWaypoint(num protowire.Number, f field, dst *[]*Waypoint) error {
	wp := &Waypoint{}
	if err := decodeMessage(num, f, wp); err != nil {
		return err
	}
	*dst = append(*dst, wp)
	return nil
}

func (m *Waypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.X)
	b = appendDouble(b, 2, m.Y)
	return appendDouble(b, 3, m.Speed)
}

func (m *Waypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.X = f.double()
		case 2:
			m.Y = f.double()
		case 3:
			m.Speed = f.double()
		}
		return nil
	})
}

func (m *ShipHeatView) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.V)
	b = appendDouble(b, 2, m.M)
	b = appendDouble(b, 3, m.W)
	b = appendDouble(b, 4, m.O)
	b = appendDouble(b, 5, m.Ms)
	b = appendDouble(b, 6, m.Su)
	b = appendDouble(b, 7, m.Ku)
	b = appendDouble(b, 8, m.Kd)
	return appendDouble(b, 9, m.Ex)
}

func (m *ShipHeatView) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.V = f.double()
		case 2:
			m.M = f.double()
		case 3:
			m.W = f.double()
		case 4:
			m.O = f.double()
		case 5:
			m.Ms = f.double()
		case 6:
			m.Su = f.double()
		case 7:
			m.Ku = f.double()
		case 8:
			m.Kd = f.double()
		case 9:
			m.Ex = f.double()
		}
		return nil
	})
}

func (m *Ghost) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Id)
	b = appendDouble(b, 2, m.X)
	b = appendDouble(b, 3, m.Y)
	b = appendDouble(b, 4, m.Vx)
	b = appendDouble(b, 5, m.Vy)
	b = appendDouble(b, 6, m.T)
	b = appendBool(b, 7, m.Self)
	b = appendWaypoints(b, 8, m.Waypoints)
	b = appendInt32(b, 9, m.CurrentWaypointIndex)
	b = appendInt32(b, 10, m.Hp)
	b = appendInt32(b, 11, m.Kills)
	if m.Heat != nil {
		b = appendMessage(b, 12, m.Heat)
	}
	return b
}

func (m *Ghost) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Id = f.str()
		case 2:
			m.X = f.double()
		case 3:
			m.Y = f.double()
		case 4:
			m.Vx = f.double()
		case 5:
			m.Vy = f.double()
		case 6:
			m.T = f.double()
		case 7:
			m.Self = f.boolean()
		case 8:
			return decodeWaypoint(num, f, &m.Waypoints)
		case 9:
			m.CurrentWaypointIndex = f.int32()
		case 10:
			m.Hp = f.int32()
		case 11:
			m.Kills = f.int32()
		case 12:
			m.Heat = &ShipHeatView{}
			return decodeMessage(num, f, m.Heat)
		}
		return nil
	})
}

func (m *Missile) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Owner)
	b = appendBool(b, 3, m.Self)
	b = appendDouble(b, 4, m.X)
	b = appendDouble(b, 5, m.Y)
	b = appendDouble(b, 6, m.Vx)
	b = appendDouble(b, 7, m.Vy)
	b = appendDouble(b, 8, m.T)
	b = appendDouble(b, 9, m.AgroRadius)
	b = appendDouble(b, 10, m.Lifetime)
	b = appendDouble(b, 11, m.LaunchTime)
	b = appendDouble(b, 12, m.ExpiresAt)
	b = appendString(b, 13, m.TargetId)
	if m.Heat != nil {
		b = appendMessage(b, 14, m.Heat)
	}
	return b
}

func (m *Missile) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Id = f.str()
		case 2:
			m.Owner = f.str()
		case 3:
			m.Self = f.boolean()
		case 4:
			m.X = f.double()
		case 5:
			m.Y = f.double()
		case 6:
			m.Vx = f.double()
		case 7:
			m.Vy = f.double()
		case 8:
			m.T = f.double()
		case 9:
			m.AgroRadius = f.double()
		case 10:
			m.Lifetime = f.double()
		case 11:
			m.LaunchTime = f.double()
		case 12:
			m.ExpiresAt = f.double()
		case 13:
			m.TargetId = f.str()
		case 14:
			m.Heat = &ShipHeatView{}
			return decodeMessage(num, f, m.Heat)
		}
		return nil
	})
}

func (m *RoomMeta) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.C)
	b = appendDouble(b, 2, m.W)
	return appendDouble(b, 3, m.H)
}

func (m *RoomMeta) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.C = f.double()
		case 2:
			m.W = f.double()
		case 3:
			m.H = f.double()
		}
		return nil
	})
}

func (m *HeatParams) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendOptionalDouble(b, 1, m.Max)
	b = appendOptionalDouble(b, 2, m.WarnAt)
	b = appendOptionalDouble(b, 3, m.OverheatAt)
	b = appendOptionalDouble(b, 4, m.MarkerSpeed)
	b = appendOptionalDouble(b, 5, m.KUp)
	b = appendOptionalDouble(b, 6, m.KDown)
	return appendOptionalDouble(b, 7, m.Exp)
}

func (m *HeatParams) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Max = f.doublePtr()
		case 2:
			m.WarnAt = f.doublePtr()
		case 3:
			m.OverheatAt = f.doublePtr()
		case 4:
			m.MarkerSpeed = f.doublePtr()
		case 5:
			m.KUp = f.doublePtr()
		case 6:
			m.KDown = f.doublePtr()
		case 7:
			m.Exp = f.doublePtr()
		}
		return nil
	})
}

func (m *MissileConfig) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.Speed)
	b = appendDouble(b, 2, m.SpeedMin)
	b = appendDouble(b, 3, m.SpeedMax)
	b = appendDouble(b, 4, m.AgroMin)
	b = appendDouble(b, 5, m.AgroRadius)
	b = appendDouble(b, 6, m.Lifetime)
	if m.HeatConfig != nil {
		b = appendMessage(b, 7, m.HeatConfig)
	}
	return b
}

func (m *MissileConfig) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Speed = f.double()
		case 2:
			m.SpeedMin = f.double()
		case 3:
			m.SpeedMax = f.double()
		case 4:
			m.AgroMin = f.double()
		case 5:
			m.AgroRadius = f.double()
		case 6:
			m.Lifetime = f.double()
		case 7:
			m.HeatConfig = &HeatParams{}
			return decodeMessage(num, f, m.HeatConfig)
		}
		return nil
	})
}

func (m *MissileRoute) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	return appendWaypoints(b, 3, m.Waypoints)
}

func (m *MissileRoute) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Id = f.str()
		case 2:
			m.Name = f.str()
		case 3:
			return decodeWaypoint(num, f, &m.Waypoints)
		}
		return nil
	})
}

func (m *InventoryItem) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Type)
	b = appendString(b, 2, m.VariantId)
	b = appendDouble(b, 3, m.HeatCapacity)
	return appendInt32(b, 4, m.Quantity)
}

func (m *InventoryItem) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Type = f.str()
		case 2:
			m.VariantId = f.str()
		case 3:
			m.HeatCapacity = f.double()
		case 4:
			m.Quantity = f.int32()
		}
		return nil
	})
}

func (m *Inventory) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	for _, item := range m.Items {
		b = appendMessage(b, 1, item)
	}
	return b
}

func (m *Inventory) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num != 1 {
			return nil
		}
		item := &InventoryItem{}
		if err := decodeMessage(num, f, item); err != nil {
			return err
		}
		m.Items = append(m.Items, item)
		return nil
	})
}

func (m *PlayerCapabilities) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.ShipSpeedMultiplier)
	b = appendDouble(b, 2, m.MissileSpeedMultiplier)
	b = appendDouble(b, 3, m.ShipHeatCapacity)
	b = appendDouble(b, 4, m.MissileHeatCapacity)
	for _, id := range m.UnlockedMissiles {
		b = appendStringAlways(b, 5, id)
	}
	return b
}

func (m *PlayerCapabilities) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.ShipSpeedMultiplier = f.double()
		case 2:
			m.MissileSpeedMultiplier = f.double()
		case 3:
			m.ShipHeatCapacity = f.double()
		case 4:
			m.MissileHeatCapacity = f.double()
		case 5:
			m.UnlockedMissiles = append(m.UnlockedMissiles, f.str())
		}
		return nil
	})
}

func (m *StateUpdate) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.Now)
	if m.Me != nil {
		b = appendMessage(b, 2, m.Me)
	}
	for _, g := range m.Ghosts {
		b = appendMessage(b, 3, g)
	}
	if m.Meta != nil {
		b = appendMessage(b, 4, m.Meta)
	}
	for _, missile := range m.Missiles {
		b = appendMessage(b, 5, missile)
	}
	if m.MissileConfig != nil {
		b = appendMessage(b, 6, m.MissileConfig)
	}
	b = appendWaypoints(b, 7, m.MissileWaypoints)
	for _, route := range m.MissileRoutes {
		b = appendMessage(b, 8, route)
	}
	b = appendString(b, 9, m.ActiveMissileRoute)
	b = appendDouble(b, 10, m.NextMissileReady)
	if m.Dag != nil {
		b = appendMessage(b, 11, m.Dag)
	}
	if m.Inventory != nil {
		b = appendMessage(b, 12, m.Inventory)
	}
	if m.Story != nil {
		b = appendMessage(b, 13, m.Story)
	}
	if m.Capabilities != nil {
		b = appendMessage(b, 14, m.Capabilities)
	}
	return b
}

func (m *StateUpdate) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Now = f.double()
		case 2:
			m.Me = &Ghost{}
			return decodeMessage(num, f, m.Me)
		case 3:
			g := &Ghost{}
			if err := decodeMessage(num, f, g); err != nil {
				return err
			}
			m.Ghosts = append(m.Ghosts, g)
		case 4:
			m.Meta = &RoomMeta{}
			return decodeMessage(num, f, m.Meta)
		case 5:
			missile := &Missile{}
			if err := decodeMessage(num, f, missile); err != nil {
				return err
			}
			m.Missiles = append(m.Missiles, missile)
		case 6:
			m.MissileConfig = &MissileConfig{}
			return decodeMessage(num, f, m.MissileConfig)
		case 7:
			return decodeWaypoint(num, f, &m.MissileWaypoints)
		case 8:
			route := &MissileRoute{}
			if err := decodeMessage(num, f, route); err != nil {
				return err
			}
			m.MissileRoutes = append(m.MissileRoutes, route)
		case 9:
			m.ActiveMissileRoute = f.str()
		case 10:
			m.NextMissileReady = f.double()
		case 11:
			m.Dag = &DagState{}
			return decodeMessage(num, f, m.Dag)
		case 12:
			m.Inventory = &Inventory{}
			return decodeMessage(num, f, m.Inventory)
		case 13:
			m.Story = &StoryState{}
			return decodeMessage(num, f, m.Story)
		case 14:
			m.Capabilities = &PlayerCapabilities{}
			return decodeMessage(num, f, m.Capabilities)
		}
		return nil
	})
}

func (m *RoomFullError) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.Message)
}

func (m *RoomFullError) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num == 1 {
			m.Message = f.str()
		}
		return nil
	})
}

func (m *DagListResponse) appendTo(b []byte) []byte {
	if m == nil || m.Dag == nil {
		return b
	}
	return appendMessage(b, 1, m.Dag)
}

func (m *DagListResponse) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num != 1 {
			return nil
		}
		m.Dag = &DagState{}
		return decodeMessage(num, f, m.Dag)
	})
}

func sortedFlagKeys(flags map[string]bool) []string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
