// Package agent defines the parameter set of one biotic disturbance agent
// (a pest or pathogen) as consumed by epicenter selection and spread.
//
// What:
//
//   - Agent carries dispersal (rate, template, kernel), selection thresholds
//     and coefficients, the SeedEpicenter toggle, and the EpicenterNum counter
//     that selection writes back each timestep.
//   - DispersalTemplate is a closed two-variant enum: FixedRadius stamps the
//     kernel once around each epicenter; Percolation floods outward hop by hop
//     through the kernel, bounded by the dispersal distance.
//   - Neighborhood names the kernel shape. N4, N8, N12 and N24 are the fixed
//     templates ("4N".."24N"); Disk contains every offset within the dispersal
//     distance, centre included ("MaxRadius").
//
// Validate reports configuration errors before any selection or spread runs.
// All such errors wrap ErrConfig.
package agent
