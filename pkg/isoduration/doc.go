// Package isoduration converts durations to and from ISO 8601 duration
// strings such as "P1DT2H30M" or "PT0.5S".
//
// Only fixed-length units are supported: days (86400 seconds), hours,
// minutes and seconds. Years and months are rejected because their length
// depends on the calendar. A leading '-' marks a negative duration.
//
// Duration implements the text, JSON, YAML and flag interfaces so it can be
// used directly as a field in decoded documents. For time.Duration fields,
// use FormatStd/ParseStd or DecodeHook.
package isoduration
