// Package csvio reads a landscape from a cell CSV and writes outbreak zones
// and epicenters back out as CSV.
//
// Cell input columns:
//
//	row,column,active,severity,last_event_severity,vulnerability,last_event_time,last_event_agent,zone
//
// The grid spans max(row)+1 by max(column)+1 cells; cells missing from the
// file are inactive. Coordinates at or past MaxSide, or a grid larger than
// MaxCells, are rejected with ErrBadRecord. An empty last_event_time means
// the cell has never been disturbed. zone takes none, last or new and
// defaults to none; feeding a previous run's zones.csv values here and
// advancing the map carries its outbreak zone into the next timestep.
//
// Output files:
//
//	zones.csv       row,column,zone   one line per active cell, row-major
//	epicenters.csv  order,row,column  in processing order
package csvio
