package airport

import "github.com/marecop/yellowair-sub000/internal/geo"

// ReferencePoint is the hub placeholders are projected from.
var ReferencePoint = geo.Point{Lat: referenceLat, Lng: referenceLng}
