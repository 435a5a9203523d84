// Package managed holds the per-unit state of an allow-listed unit: cached
// values, pending edits and the steps the apply cycle runs against it.
package managed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
)

// Field is one editable unit property
type Field int

const (
	FieldMasked Field = iota
	FieldEnabled
	FieldRunning
	FieldPort
)

const (
	MinPort = 1
	MaxPort = 65535
)

// DefaultProtocol is used for override fragments when the socket reported no listener
const DefaultProtocol = "Stream"

func (f Field) String() string {
	switch f {
	case FieldMasked:
		return "Masked"
	case FieldEnabled:
		return "Enabled"
	case FieldRunning:
		return "Running"
	case FieldPort:
		return "Port"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField accepts the property names case-insensitively
func ParseField(name string) (Field, error) {
	switch strings.ToLower(name) {
	case "masked":
		return FieldMasked, nil
	case "enabled":
		return FieldEnabled, nil
	case "running":
		return FieldRunning, nil
	case "port":
		return FieldPort, nil
	}
	return 0, errors.NewValidationError("unknown property", nil).WithContext("property", name)
}

// EditSet is a bit set of fields
type EditSet uint8

func NewEditSet(fields ...Field) EditSet {
	var s EditSet
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

func (s EditSet) With(f Field) EditSet {
	return s | 1<<uint(f)
}

func (s EditSet) Has(f Field) bool {
	return s&(1<<uint(f)) != 0
}

func (s EditSet) Empty() bool {
	return s == 0
}

// Fields lists members in declaration order
func (s EditSet) Fields() []Field {
	var fields []Field
	for f := FieldMasked; f <= FieldPort; f++ {
		if s.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

func (s EditSet) String() string {
	fields := s.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Edit is a single property change request. Flag carries the value for
// Masked, Enabled and Running; Port carries the value for Port.
type Edit struct {
	Field Field
	Flag  bool
	Port  int
}

func MaskedEdit(v bool) Edit  { return Edit{Field: FieldMasked, Flag: v} }
func EnabledEdit(v bool) Edit { return Edit{Field: FieldEnabled, Flag: v} }
func RunningEdit(v bool) Edit { return Edit{Field: FieldRunning, Flag: v} }
func PortEdit(port int) Edit  { return Edit{Field: FieldPort, Port: port} }

func (e Edit) String() string {
	if e.Field == FieldPort {
		return fmt.Sprintf("%s=%d", e.Field, e.Port)
	}
	return fmt.Sprintf("%s=%t", e.Field, e.Flag)
}

// Validate checks the edit value independently of any unit state
func (e Edit) Validate() error {
	if e.Field < FieldMasked || e.Field > FieldPort {
		return errors.NewValidationError("unknown property", nil).WithContext("field", int(e.Field))
	}
	if e.Field == FieldPort && (e.Port < MinPort || e.Port > MaxPort) {
		return errors.NewInvalidEditError(fmt.Sprintf("port %d out of range %d-%d", e.Port, MinPort, MaxPort), nil).
			WithContext("port", e.Port)
	}
	return nil
}

// ParseEdit parses a property name and its textual value, e.g. ("Port", "2200")
func ParseEdit(property, value string) (Edit, error) {
	field, err := ParseField(property)
	if err != nil {
		return Edit{}, err
	}
	if field == FieldPort {
		port, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Edit{}, errors.NewValidationError("invalid port value", err).WithContext("value", value)
		}
		return PortEdit(port), nil
	}
	flag, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return Edit{}, errors.NewValidationError("invalid boolean value", err).WithContext("value", value)
	}
	return Edit{Field: field, Flag: flag}, nil
}

// State is the desired (cached) value set of a unit
type State struct {
	Masked   bool
	Enabled  bool
	Running  bool
	Protocol string
	Port     uint16
}

// Value returns the current value of f in the Edit representation
func (s State) Value(f Field) Edit {
	switch f {
	case FieldMasked:
		return MaskedEdit(s.Masked)
	case FieldEnabled:
		return EnabledEdit(s.Enabled)
	case FieldRunning:
		return RunningEdit(s.Running)
	default:
		return PortEdit(int(s.Port))
	}
}

// IsNoop reports whether applying e would leave s unchanged
func (s State) IsNoop(e Edit) bool {
	return s.Value(e.Field) == e
}

// ApplyEdit resolves one edit against the current state. It returns the new
// state and the fields whose value changed. Masking forces enabled and running
// off; unmasking turns them on only when coupledUnmask is set. Enabled and
// Running cannot change while masked.
func ApplyEdit(cur State, e Edit, coupledUnmask bool) (State, EditSet, error) {
	if err := e.Validate(); err != nil {
		return cur, 0, err
	}
	if cur.IsNoop(e) {
		return cur, 0, nil
	}

	next := cur
	switch e.Field {
	case FieldMasked:
		next.Masked = e.Flag
		if e.Flag {
			next.Enabled = false
			next.Running = false
		} else if coupledUnmask {
			next.Enabled = true
			next.Running = true
		}
	case FieldEnabled, FieldRunning:
		if cur.Masked {
			return cur, 0, errors.NewInvalidEditError("unit is masked, unmask it first", nil).
				WithContext("field", e.Field.String())
		}
		if e.Field == FieldEnabled {
			next.Enabled = e.Flag
		} else {
			next.Running = e.Flag
		}
	case FieldPort:
		next.Port = uint16(e.Port)
	}
	return next, diff(cur, next), nil
}

func diff(a, b State) EditSet {
	var s EditSet
	if a.Masked != b.Masked {
		s = s.With(FieldMasked)
	}
	if a.Enabled != b.Enabled {
		s = s.With(FieldEnabled)
	}
	if a.Running != b.Running {
		s = s.With(FieldRunning)
	}
	if a.Port != b.Port {
		s = s.With(FieldPort)
	}
	return s
}
