package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrUnknownService is returned when a service name is not a registry key.
var ErrUnknownService = errors.New("unknown service")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and the service registry invariants.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed '%s' validation (value: %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	for name := range cfg.Services {
		if err := validateServiceName(name); err != nil {
			return err
		}
	}

	return nil
}

// validateServiceName rejects names that cannot be used as a single URL path
// segment or as a command name.
func validateServiceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("services: service name must not be empty")
	}
	if strings.ContainsAny(name, "/?# \t") {
		return fmt.Errorf("services: invalid service name %q", name)
	}
	return nil
}
