// Package config defines the fitodo client configuration file.
//
// The file is YAML and optional: a missing default file yields Default().
// Values are decoded through a raw map so that explicitly-set booleans can
// be told apart from absent ones before defaults are applied.
package config
