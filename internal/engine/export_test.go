package engine

// FleetModels lists the aircraft types of the tier covering distanceKm.
func FleetModels(distanceKm float64) []string {
	fleet := fleetFor(distanceKm)
	out := make([]string, len(fleet))
	for i, t := range fleet {
		out[i] = t.model
	}
	return out
}
