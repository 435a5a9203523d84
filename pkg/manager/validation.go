package manager

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
)

// ValidateUnitName validates an allow-listed base name
func ValidateUnitName(name string) error {
	if name == "" {
		return errors.NewValidationError("unit name cannot be empty", nil)
	}

	if len(name) > 128 {
		return errors.NewValidationError("unit name cannot exceed 128 characters", nil)
	}

	if strings.HasSuffix(name, ".service") || strings.HasSuffix(name, ".socket") {
		return errors.NewValidationError("unit name must not carry a unit suffix", nil).WithContext("name", name)
	}

	// Check for invalid characters
	for _, char := range name {
		if !isValidNameChar(char) {
			return errors.NewValidationError("unit name contains invalid characters: only letters, numbers, hyphens, underscores and dots are allowed", nil).
				WithContext("name", name)
		}
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port int) error {
	if port <= 0 || port > 65535 {
		return errors.NewValidationError("port must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateNetworkAddress validates a host:port listen address; the host may be empty
func ValidateNetworkAddress(address string) error {
	if address == "" {
		return errors.NewValidationError("network address cannot be empty", nil)
	}

	_, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return errors.NewValidationError("invalid network address format: "+address, err)
	}

	// Validate port
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.NewValidationError("invalid port in address: "+address, err)
	}

	if err := ValidatePort(port); err != nil {
		return errors.NewValidationError("invalid port in address: "+address, err)
	}

	return nil
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return errors.NewValidationError(name+" cannot be negative", nil)
	}

	if timeout == 0 {
		return errors.NewValidationError(name+" cannot be zero", nil)
	}

	return nil
}

func isValidNameChar(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9') ||
		char == '-' || char == '_' || char == '.'
}
