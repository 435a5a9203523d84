// Package units parses systemd unit names into base name, instance and kind.
package units

import "strings"

// Kind is the unit type derived from the name suffix
type Kind int

const (
	KindOther Kind = iota
	KindService
	KindSocket
)

const (
	ServiceSuffix = "service"
	SocketSuffix  = "socket"
)

func (k Kind) String() string {
	switch k {
	case KindService:
		return ServiceSuffix
	case KindSocket:
		return SocketSuffix
	default:
		return "other"
	}
}

// Manageable reports whether units of this kind can be managed
func (k Kind) Manageable() bool {
	return k == KindService || k == KindSocket
}

// Identity is a parsed unit name. InstanceName is empty for non-templated
// units and for template units such as "foo@.service", which set Template.
type Identity struct {
	BaseName     string
	InstanceName string
	Template     bool
	Kind         Kind
}

// Classify splits a raw unit name such as "obmc-console@ttyS2.service".
// Names without a "." yield KindOther with an empty base name.
func Classify(raw string) Identity {
	typePos := strings.LastIndex(raw, ".")
	if typePos < 0 {
		return Identity{Kind: KindOther}
	}

	var id Identity
	switch raw[typePos+1:] {
	case ServiceSuffix:
		id.Kind = KindService
	case SocketSuffix:
		id.Kind = KindSocket
	default:
		id.Kind = KindOther
	}

	prefix := raw[:typePos]
	if at := strings.LastIndex(prefix, "@"); at >= 0 {
		id.BaseName = prefix[:at]
		id.InstanceName = prefix[at+1:]
		id.Template = id.InstanceName == ""
	} else {
		id.BaseName = prefix
	}
	return id
}

// InstantiatedName returns "base", "base@instance" or "base@" for templates
func (id Identity) InstantiatedName() string {
	if id.Template {
		return id.BaseName + "@"
	}
	return InstantiatedName(id.BaseName, id.InstanceName)
}

// UnitName returns the full unit file name, e.g. "dropbear@1.service"
func (id Identity) UnitName() string {
	return id.InstantiatedName() + "." + id.Kind.String()
}

// InstantiatedName joins a base name and optional instance
func InstantiatedName(baseName, instanceName string) string {
	if instanceName == "" {
		return baseName
	}
	return baseName + "@" + instanceName
}

// ServiceUnitName returns "<instantiated>.service"
func ServiceUnitName(instantiated string) string {
	return instantiated + "." + ServiceSuffix
}

// SocketUnitName returns "<instantiated>.socket"
func SocketUnitName(instantiated string) string {
	return instantiated + "." + SocketSuffix
}
