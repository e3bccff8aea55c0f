package ws

import "google.golang.org/protobuf/encoding/protowire"

// WsEnvelope wraps exactly one payload. Payload is one of the WsEnvelope_* types.
type WsEnvelope struct {
	Payload isWsEnvelope_Payload
}

type isWsEnvelope_Payload interface {
	isWsEnvelope_Payload()
	payload() (protowire.Number, message)
}

type WsEnvelope_StateUpdate struct{ StateUpdate *StateUpdate }
type WsEnvelope_RoomFull struct{ RoomFull *RoomFullError }
type WsEnvelope_Join struct{ Join *ClientJoin }
type WsEnvelope_SpawnBot struct{ SpawnBot *SpawnBot }
type WsEnvelope_AddWaypoint struct{ AddWaypoint *AddWaypoint }
type WsEnvelope_UpdateWaypoint struct{ UpdateWaypoint *UpdateWaypoint }
type WsEnvelope_MoveWaypoint struct{ MoveWaypoint *MoveWaypoint }
type WsEnvelope_DeleteWaypoint struct{ DeleteWaypoint *DeleteWaypoint }
type WsEnvelope_ClearWaypoints struct{ ClearWaypoints *ClearWaypoints }
type WsEnvelope_ConfigureMissile struct{ ConfigureMissile *ConfigureMissile }
type WsEnvelope_AddMissileWaypoint struct{ AddMissileWaypoint *AddMissileWaypoint }
type WsEnvelope_UpdateMissileWaypointSpeed struct {
	UpdateMissileWaypointSpeed *UpdateMissileWaypointSpeed
}
type WsEnvelope_MoveMissileWaypoint struct{ MoveMissileWaypoint *MoveMissileWaypoint }
type WsEnvelope_DeleteMissileWaypoint struct{ DeleteMissileWaypoint *DeleteMissileWaypoint }
type WsEnvelope_ClearMissileRoute struct{ ClearMissileRoute *ClearMissileRoute }
type WsEnvelope_AddMissileRoute struct{ AddMissileRoute *AddMissileRoute }
type WsEnvelope_RenameMissileRoute struct{ RenameMissileRoute *RenameMissileRoute }
type WsEnvelope_DeleteMissileRoute struct{ DeleteMissileRoute *DeleteMissileRoute }
type WsEnvelope_SetActiveMissileRoute struct{ SetActiveMissileRoute *SetActiveMissileRoute }
type WsEnvelope_LaunchMissile struct{ LaunchMissile *LaunchMissile }
type WsEnvelope_DagStart struct{ DagStart *DagStart }
type WsEnvelope_DagCancel struct{ DagCancel *DagCancel }
type WsEnvelope_DagStoryAck struct{ DagStoryAck *DagStoryAck }
type WsEnvelope_DagList struct{ DagList *DagList }
type WsEnvelope_MissionSpawnWave struct{ MissionSpawnWave *MissionSpawnWave }
type WsEnvelope_MissionStoryEvent struct{ MissionStoryEvent *MissionStoryEvent }
type WsEnvelope_DagListResponse struct{ DagListResponse *DagListResponse }

func (*WsEnvelope_StateUpdate) isWsEnvelope_Payload()                {}
func (*WsEnvelope_RoomFull) isWsEnvelope_Payload()                   {}
func (*WsEnvelope_Join) isWsEnvelope_Payload()                       {}
func (*WsEnvelope_SpawnBot) isWsEnvelope_Payload()                   {}
func (*WsEnvelope_AddWaypoint) isWsEnvelope_Payload()                {}
func (*WsEnvelope_UpdateWaypoint) isWsEnvelope_Payload()             {}
func (*WsEnvelope_MoveWaypoint) isWsEnvelope_Payload()               {}
func (*WsEnvelope_DeleteWaypoint) isWsEnvelope_Payload()             {}
func (*WsEnvelope_ClearWaypoints) isWsEnvelope_Payload()             {}
func (*WsEnvelope_ConfigureMissile) isWsEnvelope_Payload()           {}
func (*WsEnvelope_AddMissileWaypoint) isWsEnvelope_Payload()         {}
func (*WsEnvelope_UpdateMissileWaypointSpeed) isWsEnvelope_Payload() {}
func (*WsEnvelope_MoveMissileWaypoint) isWsEnvelope_Payload()        {}
func (*WsEnvelope_DeleteMissileWaypoint) isWsEnvelope_Payload()      {}
func (*WsEnvelope_ClearMissileRoute) isWsEnvelope_Payload()          {}
func (*WsEnvelope_AddMissileRoute) isWsEnvelope_Payload()            {}
func (*WsEnvelope_RenameMissileRoute) isWsEnvelope_Payload()         {}
func (*WsEnvelope_DeleteMissileRoute) isWsEnvelope_Payload()         {}
func (*WsEnvelope_SetActiveMissileRoute) isWsEnvelope_Payload()      {}
func (*WsEnvelope_LaunchMissile) isWsEnvelope_Payload()              {}
func (*WsEnvelope_DagStart) isWsEnvelope_Payload()                   {}
func (*WsEnvelope_DagCancel) isWsEnvelope_Payload()                  {}
func (*WsEnvelope_DagStoryAck) isWsEnvelope_Payload()                {}
func (*WsEnvelope_DagList) isWsEnvelope_Payload()                    {}
func (*WsEnvelope_MissionSpawnWave) isWsEnvelope_Payload()           {}
func (*WsEnvelope_MissionStoryEvent) isWsEnvelope_Payload()          {}
func (*WsEnvelope_DagListResponse) isWsEnvelope_Payload()            {}

func (p *WsEnvelope_StateUpdate) payload() (protowire.Number, message) { return 1, p.StateUpdate }
func (p *WsEnvelope_RoomFull) payload() (protowire.Number, message)    { return 2, p.RoomFull }
func (p *WsEnvelope_Join) payload() (protowire.Number, message)        { return 10, p.Join }
func (p *WsEnvelope_SpawnBot) payload() (protowire.Number, message)    { return 11, p.SpawnBot }
func (p *WsEnvelope_AddWaypoint) payload() (protowire.Number, message) { return 12, p.AddWaypoint }
func (p *WsEnvelope_UpdateWaypoint) payload() (protowire.Number, message) {
	return 13, p.UpdateWaypoint
}
func (p *WsEnvelope_MoveWaypoint) payload() (protowire.Number, message) { return 14, p.MoveWaypoint }
func (p *WsEnvelope_DeleteWaypoint) payload() (protowire.Number, message) {
	return 15, p.DeleteWaypoint
}
func (p *WsEnvelope_ClearWaypoints) payload() (protowire.Number, message) {
	return 16, p.ClearWaypoints
}
func (p *WsEnvelope_ConfigureMissile) payload() (protowire.Number, message) {
	return 17, p.ConfigureMissile
}
func (p *WsEnvelope_AddMissileWaypoint) payload() (protowire.Number, message) {
	return 18, p.AddMissileWaypoint
}
func (p *WsEnvelope_UpdateMissileWaypointSpeed) payload() (protowire.Number, message) {
	return 19, p.UpdateMissileWaypointSpeed
}
func (p *WsEnvelope_MoveMissileWaypoint) payload() (protowire.Number, message) {
	return 20, p.MoveMissileWaypoint
}
func (p *WsEnvelope_DeleteMissileWaypoint) payload() (protowire.Number, message) {
	return 21, p.DeleteMissileWaypoint
}
func (p *WsEnvelope_ClearMissileRoute) payload() (protowire.Number, message) {
	return 22, p.ClearMissileRoute
}
func (p *WsEnvelope_AddMissileRoute) payload() (protowire.Number, message) {
	return 23, p.AddMissileRoute
}
func (p *WsEnvelope_RenameMissileRoute) payload() (protowire.Number, message) {
	return 24, p.RenameMissileRoute
}
func (p *WsEnvelope_DeleteMissileRoute) payload() (protowire.Number, message) {
	return 25, p.DeleteMissileRoute
}
func (p *WsEnvelope_SetActiveMissileRoute) payload() (protowire.Number, message) {
	return 26, p.SetActiveMissileRoute
}
func (p *WsEnvelope_LaunchMissile) payload() (protowire.Number, message) {
	return 27, p.LaunchMissile
}
func (p *WsEnvelope_DagStart) payload() (protowire.Number, message)  { return 30, p.DagStart }
func (p *WsEnvelope_DagCancel) payload() (protowire.Number, message) { return 31, p.DagCancel }
func (p *WsEnvelope_DagStoryAck) payload() (protowire.Number, message) {
	return 32, p.DagStoryAck
}
func (p *WsEnvelope_DagList) payload() (protowire.Number, message) { return 33, p.DagList }
func (p *WsEnvelope_MissionSpawnWave) payload() (protowire.Number, message) {
	return 34, p.MissionSpawnWave
}
func (p *WsEnvelope_MissionStoryEvent) payload() (protowire.Number, message) {
	return 35, p.MissionStoryEvent
}
func (p *WsEnvelope_DagListResponse) payload() (protowire.Number, message) {
	return 40, p.DagListResponse
}

// newPayload returns an empty payload wrapper for a oneof field number plus the
// inner message to decode into, or nil for numbers this client does not know.
func newPayload(num protowire.Number) (isWsEnvelope_Payload, message) {
	switch num {
	case 1:
		m := &StateUpdate{}
		return &WsEnvelope_StateUpdate{StateUpdate: m}, m
	case 2:
		m := &RoomFullError{}
		return &WsEnvelope_RoomFull{RoomFull: m}, m
	case 10:
		m := &ClientJoin{}
		return &WsEnvelope_Join{Join: m}, m
	case 11:
		m := &SpawnBot{}
		return &WsEnvelope_SpawnBot{SpawnBot: m}, m
	case 12:
		m := &AddWaypoint{}
		return &WsEnvelope_AddWaypoint{AddWaypoint: m}, m
	case 13:
		m := &UpdateWaypoint{}
		return &WsEnvelope_UpdateWaypoint{UpdateWaypoint: m}, m
	case 14:
		m := &MoveWaypoint{}
		return &WsEnvelope_MoveWaypoint{MoveWaypoint: m}, m
	case 15:
		m := &DeleteWaypoint{}
		return &WsEnvelope_DeleteWaypoint{DeleteWaypoint: m}, m
	case 16:
		m := &ClearWaypoints{}
		return &WsEnvelope_ClearWaypoints{ClearWaypoints: m}, m
	case 17:
		m := &ConfigureMissile{}
		return &WsEnvelope_ConfigureMissile{ConfigureMissile: m}, m
	case 18:
		m := &AddMissileWaypoint{}
		return &WsEnvelope_AddMissileWaypoint{AddMissileWaypoint: m}, m
	case 19:
		m := &UpdateMissileWaypointSpeed{}
		return &WsEnvelope_UpdateMissileWaypointSpeed{UpdateMissileWaypointSpeed: m}, m
	case 20:
		m := &MoveMissileWaypoint{}
		return &WsEnvelope_MoveMissileWaypoint{MoveMissileWaypoint: m}, m
	case 21:
		m := &DeleteMissileWaypoint{}
		return &WsEnvelope_DeleteMissileWaypoint{DeleteMissileWaypoint: m}, m
	case 22:
		m := &ClearMissileRoute{}
		return &WsEnvelope_ClearMissileRoute{ClearMissileRoute: m}, m
	case 23:
		m := &AddMissileRoute{}
		return &WsEnvelope_AddMissileRoute{AddMissileRoute: m}, m
	case 24:
		m := &RenameMissileRoute{}
		return &WsEnvelope_RenameMissileRoute{RenameMissileRoute: m}, m
	case 25:
		m := &DeleteMissileRoute{}
		return &WsEnvelope_DeleteMissileRoute{DeleteMissileRoute: m}, m
	case 26:
		m := &SetActiveMissileRoute{}
		return &WsEnvelope_SetActiveMissileRoute{SetActiveMissileRoute: m}, m
	case 27:
		m := &LaunchMissile{}
		return &WsEnvelope_LaunchMissile{LaunchMissile: m}, m
	case 30:
		m := &DagStart{}
		return &WsEnvelope_DagStart{DagStart: m}, m
	case 31:
		m := &DagCancel{}
		return &WsEnvelope_DagCancel{DagCancel: m}, m
	case 32:
		m := &DagStoryAck{}
		return &WsEnvelope_DagStoryAck{DagStoryAck: m}, m
	case 33:
		m := &DagList{}
		return &WsEnvelope_DagList{DagList: m}, m
	case 34:
		m := &MissionSpawnWave{}
		return &WsEnvelope_MissionSpawnWave{MissionSpawnWave: m}, m
	case 35:
		m := &MissionStoryEvent{}
		return &WsEnvelope_MissionStoryEvent{MissionStoryEvent: m}, m
	case 40:
		m := &DagListResponse{}
		return &WsEnvelope_DagListResponse{DagListResponse: m}, m
	}
	return nil, nil
}

func (e *WsEnvelope) appendTo(b []byte) []byte {
	if e == nil || e.Payload == nil {
		return b
	}
	num, m := e.Payload.payload()
	return appendMessage(b, num, m)
}

func (e *WsEnvelope) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, f field) error {
		p, m := newPayload(num)
		if p == nil {
			return nil
		}
		if err := decodeMessage(num, f, m); err != nil {
			return err
		}
		// last oneof field on the wire wins
		e.Payload = p
		return nil
	})
}
