// Package provider implements the pluggable provider pattern: a generic
// Registry of named factories, Selector strategies for choosing among
// instantiated providers, and a Manager combining both.
//
// Domain packages (e.g. transcription) define their own Provider interface
// embedding provider.Provider and instantiate the generics with it.
package provider
