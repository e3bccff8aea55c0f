package client

import "LightSpeedDuelClient/internal/game"

// ProjectActiveMissileRoute forecasts heat for the active missile route as if
// launched now from the own ship at cruise speed. ok is false when there is no
// active route.
func ProjectActiveMissileRoute(state *game.AppState) (proj game.RouteHeatProjection, ok bool) {
	route := state.ActiveMissileRoute()
	if route == nil {
		return game.RouteHeatProjection{OverheatAt: -1}, false
	}

	cruise := state.MissileConfig.Speed
	waypoints := make([]game.Waypoint, 0, len(route.Waypoints)+1)
	if state.Me != nil {
		waypoints = append(waypoints, game.Waypoint{X: state.Me.X, Y: state.Me.Y, Speed: cruise})
	}
	waypoints = append(waypoints, route.Waypoints...)

	params := game.DefaultMissileHeatParams()
	if hp := state.MissileConfig.HeatParams; hp != nil {
		params = *hp
	}
	return game.ProjectRouteHeat(waypoints, cruise, game.SanitizeHeatParams(params)), true
}
