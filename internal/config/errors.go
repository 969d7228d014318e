package config

import "errors"

var (
	// ErrStartup means the base path could not be resolved or created
	ErrStartup = errors.New("unable to prepare dotty directory")
	// ErrConfigRead means an existing config file could not be read
	ErrConfigRead = errors.New("unable to read existing config file")
	// ErrConfigParse means an existing config file is not a valid document
	ErrConfigParse = errors.New("unable to parse existing config file")
	// ErrConfigWrite means the document could not be encoded or written
	ErrConfigWrite = errors.New("unable to save config file")
)
