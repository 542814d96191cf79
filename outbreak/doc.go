// Package outbreak runs one timestep of a biotic disturbance for a single
// agent: validate the agent, select epicenters, record the new epicenter
// count on the agent and spread the outbreak zone.
//
// The caller owns every input. Step borrows them for the duration of the
// call and writes back only Agent.EpicenterNum and NewZone cells in Zones.
// Zones is expected to have been rolled forward with zone.Map.Advance so
// that last timestep's zone reads as LastZone during selection.
//
// Step is the only place that logs. An empty epicenter list is logged as a
// warning and leaves the zone map unchanged.
package outbreak
