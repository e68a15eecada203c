package api

import "github.com/ssargent/csxhair/pkg/crosshair"

// ShareCodec defines the share code operations the API serves.
// *crosshair.ShareCodeCodec implements it.
type ShareCodec interface {
	Encode(c crosshair.Crosshair) string
	Decode(code string) (crosshair.Crosshair, error)
}
