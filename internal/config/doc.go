// Package config provides configuration management for regscan.
//
// Configuration comes from three layers: documented defaults, an optional
// YAML file (.regscan in the current or home directory) carrying
// site-session settings such as cookies and headers, and CLI flags which
// win over both. The resulting Config struct is passed through the
// application by value rather than read from global state.
package config
