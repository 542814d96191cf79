// Package outbreak simulates one timestep of a biotic disturbance (a pest or
// pathogen outbreak) on a gridded landscape: it picks the epicenter cells of
// a new outbreak and spreads the outbreak zone outward from them.
//
// Packages
//
//	landscape/    grid arena: active mask, row-major index, offsets, distance
//	signals/      per-cell severity, vulnerability and last-event signals
//	zone/         None / LastZone / NewZone map, timestep roll-over, patches
//	agent/        disturbance agent parameters, dispersal kernels, validation
//	rng/          seeded random source and a scripted stub for tests
//	epicenter/    inside, outside (Michaelis–Menten) and fallback epicenters
//	spread/       FixedRadius stamp and distance-bounded Percolation fill
//	outbreak/     one timestep: validate → select → spread, with slog logging
//	config/       YAML scenario with embedded defaults
//	csvio/        cell CSV input, zone and epicenter CSV output
//	cmd/outbreak  command-line runner
//
// Quick start
//
//	cfg, _ := config.Load("")
//	ag, _ := cfg.NewAgent()
//	g, _ := landscape.New(100, 100, 30)
//	zones := zone.NewMap(g)
//	res, err := outbreak.Step(outbreak.Input{
//		Grid: g, Signals: signals.NewLayers(g, zones), Zones: zones,
//		Agent: ag, Source: rng.New(1), Timestep: 1, TimestepLength: 1,
//	})
//
// Every random decision goes through an rng.Source, so a fixed seed
// reproduces the same epicenters and zones.
package outbreak
