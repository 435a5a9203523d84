// Package domain defines the control surface shared by the daemon and its clients.
package domain

import (
	"context"
)

// UnitInfo is the caller-facing view of one managed unit
type UnitInfo struct {
	Name          string   `json:"name"`
	BaseName      string   `json:"base_name"`
	InstanceName  string   `json:"instance_name,omitempty"`
	HasService    bool     `json:"has_service"`
	HasSocket     bool     `json:"has_socket"`
	FanOut        bool     `json:"fan_out,omitempty"`
	Policy        string   `json:"policy"`
	UnitFileState string   `json:"unit_file_state"`
	SubState      string   `json:"sub_state"`
	Masked        bool     `json:"masked"`
	Enabled       bool     `json:"enabled"`
	Running       bool     `json:"running"`
	Protocol      string   `json:"protocol,omitempty"`
	Port          uint16   `json:"port,omitempty"`
	Pending       []string `json:"pending,omitempty"`
	Suppressed    bool     `json:"suppressed,omitempty"`
}

type Contract interface {
	Status(ctx context.Context) (string, error)
	ListUnits(ctx context.Context) ([]UnitInfo, error)
	GetUnit(ctx context.Context, name string) (*UnitInfo, error)
	// SetProperty requests an edit of Masked, Enabled, Running or Port
	SetProperty(ctx context.Context, name, property, value string) error
}
