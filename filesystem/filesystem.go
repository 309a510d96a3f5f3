// Package filesystem routes all file access through a swappable afero backend.
//
// Production code runs against the operating system filesystem; tests switch
// to an in-memory backend so file discovery and configuration loading can be
// exercised without touching the disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the backend every filesystem operation goes through.
func API() afero.Afero {
	return backend
}

// SetOsFs points the backend at the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs points the backend at a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
