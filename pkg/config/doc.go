// Package config loads, defaults and validates the PhiGuard node
// configuration.
//
// Configuration comes from a YAML file; environment variables with the
// PHIGUARD_ prefix override individual fields and always win. The loading
// sequence is: parse YAML, apply defaults, apply environment overrides,
// validate.
package config
