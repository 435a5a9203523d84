package topology

import (
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// AllowEntry is one allow-listed base name
type AllowEntry struct {
	Name string
	// SocketActivated units spawn one service instance per connection;
	// only the base template is tracked
	SocketActivated bool
	Policy          string
}

// AllowList is keyed by base name
type AllowList map[string]AllowEntry

// NewAllowList indexes entries by name
func NewAllowList(entries ...AllowEntry) AllowList {
	list := make(AllowList, len(entries))
	for _, e := range entries {
		list[e.Name] = e
	}
	return list
}

// Build groups the allow-listed services and sockets of a live listing into records
func Build(live []systemd.UnitStatus, allow AllowList) Snapshot {
	snapshot := make(Snapshot)
	for _, unit := range live {
		if unit.LoadState == systemd.LoadStateNotFound {
			continue
		}
		id := units.Classify(unit.Name)
		if !id.Kind.Manageable() || id.Template {
			continue
		}
		entry, ok := allow[id.BaseName]
		if !ok {
			continue
		}
		if entry.SocketActivated && id.InstanceName != "" {
			continue
		}

		objectPath := unit.ObjectPath
		if objectPath == "" {
			objectPath = systemd.UnitObjectPath(unit.Name)
		}

		name := id.InstantiatedName()
		rec, exists := snapshot[name]
		if !exists {
			rec = Record{BaseName: id.BaseName, InstanceName: id.InstanceName}
		}
		switch id.Kind {
		case units.KindService:
			if rec.ServiceObjectPath == "" {
				rec.ServiceObjectPath = objectPath
			}
		case units.KindSocket:
			if rec.SocketObjectPath == "" {
				rec.SocketObjectPath = objectPath
			}
		}
		snapshot[name] = rec
	}
	return snapshot
}

// Reconcile adds the discovered names missing from persisted. Persisted
// entries always win and are never removed. Neither input is modified.
func Reconcile(discovered, persisted Snapshot) (merged Snapshot, changed bool) {
	merged = persisted.Clone()
	for name, rec := range discovered {
		if _, ok := merged[name]; ok {
			continue
		}
		merged[name] = rec
		changed = true
	}
	return merged, changed
}
