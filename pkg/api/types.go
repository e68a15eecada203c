package api

import (
	"github.com/ssargent/csxhair/pkg/crosshair"
	"github.com/ssargent/csxhair/pkg/cvar"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// DecodeRequest carries a share code to decode
type DecodeRequest struct {
	Code string `json:"code"`
}

// CrosshairResponse describes a crosshair together with its share code
type CrosshairResponse struct {
	Code      string              `json:"code"`
	Crosshair crosshair.Crosshair `json:"crosshair"`
	Variant   cvar.Variant        `json:"variant"`
	Commands  []string            `json:"commands"`
}

// CommandsResponse carries a rendered command list
type CommandsResponse struct {
	Variant  cvar.Variant `json:"variant"`
	Commands []string     `json:"commands"`
	Script   string       `json:"script"`
}
