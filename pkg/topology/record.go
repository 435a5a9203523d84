// Package topology builds the set of managed units from the live unit listing
// and keeps it persisted across restarts.
package topology

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// Record pairs the service and socket halves of one logical unit.
// At least one object path is non-empty.
type Record struct {
	BaseName          string
	InstanceName      string
	ServiceObjectPath string
	SocketObjectPath  string
}

// InstantiatedName returns "base" or "base@instance"
func (r Record) InstantiatedName() string {
	return units.InstantiatedName(r.BaseName, r.InstanceName)
}

// HasService reports whether the record has a service half
func (r Record) HasService() bool {
	return r.ServiceObjectPath != ""
}

// HasSocket reports whether the record has a socket half
func (r Record) HasSocket() bool {
	return r.SocketObjectPath != ""
}

// MarshalJSON encodes the record as [base, instance, servicePath, socketPath]
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]string{r.BaseName, r.InstanceName, r.ServiceObjectPath, r.SocketObjectPath})
}

// UnmarshalJSON decodes the 4-tuple form written by MarshalJSON
func (r *Record) UnmarshalJSON(data []byte) error {
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 4 {
		return fmt.Errorf("expected 4 elements, got %d", len(tuple))
	}
	rec := Record{
		BaseName:          tuple[0],
		InstanceName:      tuple[1],
		ServiceObjectPath: tuple[2],
		SocketObjectPath:  tuple[3],
	}
	if rec.BaseName == "" {
		return fmt.Errorf("empty base name")
	}
	if !rec.HasService() && !rec.HasSocket() {
		return fmt.Errorf("record %s has neither service nor socket object", rec.InstantiatedName())
	}
	*r = rec
	return nil
}

// Snapshot maps instantiated name to record
type Snapshot map[string]Record

// Names returns the snapshot keys in sorted order
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy
func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
