// Package io reads and writes calendar files and rendered artifacts.
//
// # Calendar Files
//
// [ImportCalendar] accepts JSON (.json) or YAML (.yaml, .yml) in either of
// two shapes: the bare calendar
//
//	{
//	  "totalContributions": 42,
//	  "weeks": [
//	    {"contributionDays": [{"date": "2024-06-02", "weekday": 0, "contributionCount": 3}]}
//	  ]
//	}
//
// or the raw GraphQL response saved from the GitHub API
// ({"data": {"user": {"contributionsCollection": {"contributionCalendar": ...}}}}).
// [ExportCalendar] always writes the bare shape, in JSON or YAML by
// extension, so a fetched calendar can be re-rendered offline.
//
// # Artifacts
//
// [WriteArtifacts] writes rendered documents into an output directory
// (usually dist/) using stable names:
//
//	pacman-contribution-graph.svg         dark theme, SVG
//	pacman-contribution-graph-light.svg   any other theme
//	pacman-contribution-graph-light.png   other formats
//
// The dark SVG keeps the unsuffixed name so README embeds keep working.
package io
