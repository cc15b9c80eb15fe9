// Package data holds the curated reference datasets consumed by the mock
// services: airports, carriers, destination-keyed hotel and activity
// catalogs, and the taxonomies used to synthesize entries for unknown
// destinations.
package data

import _ "embed"

//go:embed airports.json
var Airports []byte

//go:embed airlines.json
var Airlines []byte

//go:embed hotels.json
var Hotels []byte

//go:embed activities.json
var Activities []byte

//go:embed taxonomies.json
var Taxonomies []byte
