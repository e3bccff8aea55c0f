package client

import pb "LightSpeedDuelClient/internal/proto/ws"

// Command senders. Each one is fire-and-forget: the server answers, if at
// all, through the next state snapshot.

// JoinRoom announces the player to the room the Manager was dialed for.
func (m *Manager) JoinRoom(name string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_Join{Join: &pb.ClientJoin{
		Name: name,
		Room: m.room,
		MapW: float64(m.join.MapW),
		MapH: float64(m.join.MapH),
	}}})
}

func (m *Manager) SpawnBot() {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_SpawnBot{SpawnBot: &pb.SpawnBot{}}})
}

// Ship route editing.

func (m *Manager) AddWaypoint(x, y, speed float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_AddWaypoint{AddWaypoint: &pb.AddWaypoint{X: x, Y: y, Speed: speed}}})
}

func (m *Manager) UpdateWaypointSpeed(index int, speed float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_UpdateWaypoint{UpdateWaypoint: &pb.UpdateWaypoint{
		Index: int32(index),
		Speed: speed,
	}}})
}

func (m *Manager) MoveWaypoint(index int, x, y float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_MoveWaypoint{MoveWaypoint: &pb.MoveWaypoint{
		Index: int32(index),
		X:     x,
		Y:     y,
	}}})
}

func (m *Manager) DeleteWaypoint(index int) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DeleteWaypoint{DeleteWaypoint: &pb.DeleteWaypoint{Index: int32(index)}}})
}

func (m *Manager) ClearWaypoints() {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_ClearWaypoints{ClearWaypoints: &pb.ClearWaypoints{}}})
}

// Missile configuration and routes.

// ConfigureMissile asks for new missile speed and agro radius. The server
// clamps both; the clamped values come back in the next snapshot.
func (m *Manager) ConfigureMissile(speed, agro float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_ConfigureMissile{ConfigureMissile: &pb.ConfigureMissile{
		MissileSpeed: speed,
		MissileAgro:  agro,
	}}})
}

func (m *Manager) AddMissileWaypoint(routeID string, x, y, speed float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_AddMissileWaypoint{AddMissileWaypoint: &pb.AddMissileWaypoint{
		RouteId: routeID,
		X:       x,
		Y:       y,
		Speed:   speed,
	}}})
}

func (m *Manager) UpdateMissileWaypointSpeed(routeID string, index int, speed float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_UpdateMissileWaypointSpeed{UpdateMissileWaypointSpeed: &pb.UpdateMissileWaypointSpeed{
		RouteId: routeID,
		Index:   int32(index),
		Speed:   speed,
	}}})
}

func (m *Manager) MoveMissileWaypoint(routeID string, index int, x, y float64) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_MoveMissileWaypoint{MoveMissileWaypoint: &pb.MoveMissileWaypoint{
		RouteId: routeID,
		Index:   int32(index),
		X:       x,
		Y:       y,
	}}})
}

func (m *Manager) DeleteMissileWaypoint(routeID string, index int) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DeleteMissileWaypoint{DeleteMissileWaypoint: &pb.DeleteMissileWaypoint{
		RouteId: routeID,
		Index:   int32(index),
	}}})
}

func (m *Manager) ClearMissileRoute(routeID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_ClearMissileRoute{ClearMissileRoute: &pb.ClearMissileRoute{RouteId: routeID}}})
}

func (m *Manager) AddMissileRoute(name string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_AddMissileRoute{AddMissileRoute: &pb.AddMissileRoute{Name: name}}})
}

func (m *Manager) RenameMissileRoute(routeID, name string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_RenameMissileRoute{RenameMissileRoute: &pb.RenameMissileRoute{
		RouteId: routeID,
		Name:    name,
	}}})
}

func (m *Manager) DeleteMissileRoute(routeID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DeleteMissileRoute{DeleteMissileRoute: &pb.DeleteMissileRoute{RouteId: routeID}}})
}

func (m *Manager) SetActiveMissileRoute(routeID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_SetActiveMissileRoute{SetActiveMissileRoute: &pb.SetActiveMissileRoute{RouteId: routeID}}})
}

// LaunchMissile fires along routeID. The launch is confirmed by a
// missile:launched event once the missile shows up in a snapshot.
func (m *Manager) LaunchMissile(routeID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_LaunchMissile{LaunchMissile: &pb.LaunchMissile{RouteId: routeID}}})
}

// Tech tree and story.

func (m *Manager) StartDagNode(nodeID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DagStart{DagStart: &pb.DagStart{NodeId: nodeID}}})
}

func (m *Manager) CancelDagNode(nodeID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DagCancel{DagCancel: &pb.DagCancel{NodeId: nodeID}}})
}

// AckStoryDialogue closes a story node. choiceID is empty for dialogue
// without choices.
func (m *Manager) AckStoryDialogue(nodeID, choiceID string) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DagStoryAck{DagStoryAck: &pb.DagStoryAck{
		NodeId:   nodeID,
		ChoiceId: choiceID,
	}}})
}

// RequestDagList asks for the full node list; the answer arrives as a
// dag:list event.
func (m *Manager) RequestDagList() {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_DagList{DagList: &pb.DagList{}}})
}

// Mission scripting.

func (m *Manager) SpawnMissionWave(index int) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_MissionSpawnWave{MissionSpawnWave: &pb.MissionSpawnWave{WaveIndex: int32(index)}}})
}

func (m *Manager) EmitMissionStoryEvent(event string, beacon int) {
	m.send(&pb.WsEnvelope{Payload: &pb.WsEnvelope_MissionStoryEvent{MissionStoryEvent: &pb.MissionStoryEvent{
		Event:  event,
		Beacon: int32(beacon),
	}}})
}
