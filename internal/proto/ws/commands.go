package ws

import "google.golang.org/protobuf/encoding/protowire"

type ClientJoin struct {
	Name string
	Room string
	MapW float64
	MapH float64
}

type SpawnBot struct{}

type AddWaypoint struct {
	X     float64
	Y     float64
	Speed float64
}

type UpdateWaypoint struct {
	Index int32
	Speed float64
}

type MoveWaypoint struct {
	Index int32
	X     float64
	Y     float64
}

type DeleteWaypoint struct {
	Index int32
}

type ClearWaypoints struct{}

type ConfigureMissile struct {
	MissileSpeed float64
	MissileAgro  float64
}

type AddMissileWaypoint struct {
	RouteId string
	X       float64
	Y       float64
	Speed   float64
}

type UpdateMissileWaypointSpeed struct {
	RouteId string
	Index   int32
	Speed   float64
}

type MoveMissileWaypoint struct {
	RouteId string
	Index   int32
	X       float64
	Y       float64
}

type DeleteMissileWaypoint struct {
	RouteId string
	Index   int32
}

type ClearMissileRoute struct{ RouteId string }

type AddMissileRoute struct{ Name string }

type RenameMissileRoute struct {
	RouteId string
	Name    string
}

type DeleteMissileRoute struct{ RouteId string }

type SetActiveMissileRoute struct{ RouteId string }

type LaunchMissile struct{ RouteId string }

type DagStart struct{ NodeId string }

type DagCancel struct{ NodeId string }

type DagStoryAck struct {
	NodeId   string
	ChoiceId string
}

type DagList struct{}

type MissionSpawnWave struct{ WaveIndex int32 }

type MissionStoryEvent struct {
	Event  string
	Beacon int32
}

// decodeRouteID handles the many commands whose only field is a route id.
func decodeRouteID(b []byte, dst *string) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num == 1 {
			*dst = f.str()
		}
		return nil
	})
}

func (m *ClientJoin) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Room)
	b = appendDouble(b, 3, m.MapW)
	return appendDouble(b, 4, m.MapH)
}

func (m *ClientJoin) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Name = f.str()
		case 2:
			m.Room = f.str()
		case 3:
			m.MapW = f.double()
		case 4:
			m.MapH = f.double()
		}
		return nil
	})
}

func (m *SpawnBot) appendTo(b []byte) []byte { return b }
func (m *SpawnBot) unmarshal(b []byte) error {
	return decodeFields(b, func(protowire.Number, field) error { return nil })
}

func (m *ClearWaypoints) appendTo(b []byte) []byte { return b }
func (m *ClearWaypoints) unmarshal(b []byte) error {
	return decodeFields(b, func(protowire.Number, field) error { return nil })
}

func (m *DagList) appendTo(b []byte) []byte { return b }
func (m *DagList) unmarshal(b []byte) error {
	return decodeFields(b, func(protowire.Number, field) error { return nil })
}

func (m *AddWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.X)
	b = appendDouble(b, 2, m.Y)
	return appendDouble(b, 3, m.Speed)
}

func (m *AddWaypoint) unmarshal(b []byte) error {
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

func (m *UpdateWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, m.Index)
	return appendDouble(b, 2, m.Speed)
}

func (m *UpdateWaypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Index = f.int32()
		case 2:
			m.Speed = f.double()
		}
		return nil
	})
}

func (m *MoveWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, m.Index)
	b = appendDouble(b, 2, m.X)
	return appendDouble(b, 3, m.Y)
}

func (m *MoveWaypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Index = f.int32()
		case 2:
			m.X = f.double()
		case 3:
			m.Y = f.double()
		}
		return nil
	})
}

func (m *DeleteWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendInt32(b, 1, m.Index)
}

func (m *DeleteWaypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num == 1 {
			m.Index = f.int32()
		}
		return nil
	})
}

func (m *ConfigureMissile) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendDouble(b, 1, m.MissileSpeed)
	return appendDouble(b, 2, m.MissileAgro)
}

func (m *ConfigureMissile) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.MissileSpeed = f.double()
		case 2:
			m.MissileAgro = f.double()
		}
		return nil
	})
}

func (m *AddMissileWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.RouteId)
	b = appendDouble(b, 2, m.X)
	b = appendDouble(b, 3, m.Y)
	return appendDouble(b, 4, m.Speed)
}

func (m *AddMissileWaypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.RouteId = f.str()
		case 2:
			m.X = f.double()
		case 3:
			m.Y = f.double()
		case 4:
			m.Speed = f.double()
		}
		return nil
	})
}

func (m *UpdateMissileWaypointSpeed) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.RouteId)
	b = appendInt32(b, 2, m.Index)
	return appendDouble(b, 3, m.Speed)
}

func (m *UpdateMissileWaypointSpeed) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.RouteId = f.str()
		case 2:
			m.Index = f.int32()
		case 3:
			m.Speed = f.double()
		}
		return nil
	})
}

func (m *MoveMissileWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.RouteId)
	b = appendInt32(b, 2, m.Index)
	b = appendDouble(b, 3, m.X)
	return appendDouble(b, 4, m.Y)
}

func (m *MoveMissileWaypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.RouteId = f.str()
		case 2:
			m.Index = f.int32()
		case 3:
			m.X = f.double()
		case 4:
			m.Y = f.double()
		}
		return nil
	})
}

func (m *DeleteMissileWaypoint) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.RouteId)
	return appendInt32(b, 2, m.Index)
}

func (m *DeleteMissileWaypoint) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.RouteId = f.str()
		case 2:
			m.Index = f.int32()
		}
		return nil
	})
}

func (m *ClearMissileRoute) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.RouteId)
}

func (m *ClearMissileRoute) unmarshal(b []byte) error { return decodeRouteID(b, &m.RouteId) }

func (m *AddMissileRoute) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.Name)
}

func (m *AddMissileRoute) unmarshal(b []byte) error { return decodeRouteID(b, &m.Name) }

func (m *RenameMissileRoute) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.RouteId)
	return appendString(b, 2, m.Name)
}

func (m *RenameMissileRoute) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.RouteId = f.str()
		case 2:
			m.Name = f.str()
		}
		return nil
	})
}

func (m *DeleteMissileRoute) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.RouteId)
}

func (m *DeleteMissileRoute) unmarshal(b []byte) error { return decodeRouteID(b, &m.RouteId) }

func (m *SetActiveMissileRoute) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.RouteId)
}

func (m *SetActiveMissileRoute) unmarshal(b []byte) error { return decodeRouteID(b, &m.RouteId) }

func (m *LaunchMissile) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.RouteId)
}

func (m *LaunchMissile) unmarshal(b []byte) error { return decodeRouteID(b, &m.RouteId) }

func (m *DagStart) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.NodeId)
}

func (m *DagStart) unmarshal(b []byte) error { return decodeRouteID(b, &m.NodeId) }

func (m *DagCancel) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendString(b, 1, m.NodeId)
}

func (m *DagCancel) unmarshal(b []byte) error { return decodeRouteID(b, &m.NodeId) }

func (m *DagStoryAck) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.NodeId)
	return appendString(b, 2, m.ChoiceId)
}

func (m *DagStoryAck) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.NodeId = f.str()
		case 2:
			m.ChoiceId = f.str()
		}
		return nil
	})
}

func (m *MissionSpawnWave) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendInt32(b, 1, m.WaveIndex)
}

func (m *MissionSpawnWave) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		if num == 1 {
			m.WaveIndex = f.int32()
		}
		return nil
	})
}

func (m *MissionStoryEvent) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Event)
	return appendInt32(b, 2, m.Beacon)
}

func (m *MissionStoryEvent) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		switch num {
		case 1:
			m.Event = f.str()
		case 2:
			m.Beacon = f.int32()
		}
		return nil
	})
}
