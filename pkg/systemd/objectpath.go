package systemd

import (
	sdbus "github.com/coreos/go-systemd/v22/dbus"
)

// UnitObjectPathPrefix is where systemd publishes unit objects on the bus
const UnitObjectPathPrefix = "/org/freedesktop/systemd1/unit/"

// UnitObjectPath returns the bus object path systemd uses for a unit name,
// e.g. "bmcweb.service" -> "/org/freedesktop/systemd1/unit/bmcweb_2eservice".
func UnitObjectPath(unitName string) string {
	return UnitObjectPathPrefix + sdbus.PathBusEscape(unitName)
}
