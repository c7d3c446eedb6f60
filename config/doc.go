// Package config loads the runtime settings of a transit routing service:
// the search horizon, the default change time and the logger.
//
// Sources are applied in order, later ones winning:
//
//  1. Default()
//  2. a YAML file (optional, see Load)
//  3. environment variables LVTRANSIT_HORIZON, LVTRANSIT_CHANGE_TIME,
//     LVTRANSIT_LOG_LEVEL and LVTRANSIT_LOG_FORMAT
//
// Example file:
//
//	horizon: 6
//	change_time: 3
//	start: "07:30"
//	log:
//	  level: debug
//	  format: json
//
// An environment value that does not parse is ignored and the previous value
// is kept. A malformed file, or a final value out of range, is an error.
package config
