// Package kernel provides the shared value objects of the dispatch domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - GeoPoint: a validated latitude/longitude pair with great-circle distance
//   - Money: integer amounts in minor currency units (kobo)
//
// Values are immutable and safe for concurrent use. Zero values are invalid and
// fail Validate, so every value must come from its constructor.
package kernel
