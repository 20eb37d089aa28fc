// Package service runs long-lived infrastructure beside the game loop.
package service

// Service defines the lifecycle of an optional subsystem such as audio or the spectator feed
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration, may fail without side effects
//  3. Start() - acquire devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service; args are whatever the hub was given
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts the service; must be idempotent
	Stop() error
}
