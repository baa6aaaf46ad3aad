// Package configuration establishes the application configuration from its
// sources. In ascending order of precedence these are the built-in defaults,
// any given environment files and the process environment. Command-line flags
// are applied on top by the caller.
package configuration

import (
	"fmt"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is the prefix of all configuration keys, both inside
	// environment files and in the process environment.
	EnvPrefix = "DIRENT_FILTER"

	// DefaultVarName is the variable name of the structured value, unless
	// configured otherwise.
	DefaultVarName = "item"

	keyExpression = EnvPrefix + "_EXPR"
	keyVarName    = EnvPrefix + "_NAME"
	keyVerbose    = EnvPrefix + "_VERBOSE"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	Expression string `envconfig:"DIRENT_FILTER_EXPR"`
	VarName    string `envconfig:"DIRENT_FILTER_NAME"`
	Verbose    bool   `envconfig:"DIRENT_FILTER_VERBOSE"`
}

// Validate checks the configuration is complete.
func (a *AppConfiguration) Validate() error {
	if a.Expression == "" {
		return fmt.Errorf("(config) %w: use --expr or %s", ErrMissingExpression, keyExpression)
	}

	return nil
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// ReadGeneric reads the given configuration files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// MapKeyToString returns the value of key, or an empty string if missing.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the value of key as a bool, or false if missing.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("(config) %w: %s=%q", ErrInvalidValue, key, value)
	}

	return boolValue, nil
}

// Establish returns the [AppConfiguration] resulting from the defaults, the
// given environment files (none are read if empty) and the process
// environment. The result is not validated.
func (c *Handler) Establish(envFiles ...string) (*AppConfiguration, error) {
	config := &AppConfiguration{
		VarName: DefaultVarName,
	}

	if len(envFiles) > 0 {
		envMap, err := c.ReadGeneric(envFiles...)
		if err != nil {
			return nil, fmt.Errorf("(config) failed to read env files: %w", err)
		}

		if err := c.applyEnvMap(config, envMap); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("(config) failed to process environment: %w", err)
	}

	return config, nil
}

func (c *Handler) applyEnvMap(config *AppConfiguration, envMap map[string]string) error {
	if expr := c.MapKeyToString(envMap, keyExpression); expr != "" {
		config.Expression = expr
	}

	if name := c.MapKeyToString(envMap, keyVarName); name != "" {
		config.VarName = name
	}

	verbose, err := c.MapKeyToBool(envMap, keyVerbose)
	if err != nil {
		return err
	}
	config.Verbose = config.Verbose || verbose

	return nil
}
