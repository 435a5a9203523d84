package managed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

const overrideFileName = "override.conf"

// OverrideWriter writes socket drop-ins under <dir>/<unit>.socket.d/
type OverrideWriter struct {
	dir string
}

func NewOverrideWriter(dir string) *OverrideWriter {
	return &OverrideWriter{dir: dir}
}

// Path returns the drop-in file for the given instantiated name
func (w *OverrideWriter) Path(instantiatedName string) string {
	return filepath.Join(w.dir, units.SocketUnitName(instantiatedName)+".d", overrideFileName)
}

// RenderOverride clears inherited listeners and sets the new one
func RenderOverride(protocol string, port uint16) string {
	if protocol == "" {
		protocol = DefaultProtocol
	}
	return fmt.Sprintf("[Socket]\nListen%s=\nListen%s=%d\n", protocol, protocol, port)
}

// Write atomically replaces the drop-in
func (w *OverrideWriter) Write(instantiatedName, protocol string, port uint16) (string, error) {
	path := w.Path(instantiatedName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, errors.NewConfigWriteError("failed to create override directory", err).WithContext("path", path)
	}
	if err := renameio.WriteFile(path, []byte(RenderOverride(protocol, port)), 0644); err != nil {
		return path, errors.NewConfigWriteError("failed to write override file", err).WithContext("path", path)
	}
	return path, nil
}
