package logging

import (
	corelogging "github.com/core-tools/hsu-core/pkg/logging"
)

// NewCoreLogger feeds hsu-core components into parent under their own prefix
func NewCoreLogger(prefix string, parent Logger) corelogging.Logger {
	return corelogging.NewLogger(prefix, corelogging.LogFuncs{
		Debugf: parent.Debugf,
		Infof:  parent.Infof,
		Warnf:  parent.Warnf,
		Errorf: parent.Errorf,
	})
}
