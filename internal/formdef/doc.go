// Package formdef loads form definitions - named sets of masked fields
// with labels and optional locales - from YAML or TOML files, validates
// their mask patterns at load time, and reloads them on change.
package formdef
