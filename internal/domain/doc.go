// Package domain models the EPA sea-level record and the linear trends fitted
// to it.
//
// # Data Source
//
// Observations come from the EPA "Climate Change Indicators: Sea Level"
// dataset, distributed as epa-sea-level.csv. Each row is one year of the
// CSIRO reconstruction of global mean sea level, adjusted for land movement.
//
//	Year,CSIRO Adjusted Sea Level,Lower Error Bound,Upper Error Bound,NOAA Adjusted Sea Level
//	1880,0.0,-0.952755905,0.952755905,
//
// Only the Year and CSIRO Adjusted Sea Level columns are used. Levels are in
// inches relative to the 1880 baseline. The NOAA column is empty before 1993
// and is ignored.
//
// # Trends
//
// Two ordinary least-squares fits are computed: one over every observation and
// one over the recent subset (years from RecentFromYear through the last
// observed year). Both are extrapolated over synthetic years up to, but not
// including, the horizon year. Synthetic years never carry a level; their
// values come from evaluating the fitted line.
package domain
