// Package component defines the lifecycle interface for infrastructure
// components and a registry that starts them in registration order and
// stops them in reverse.
package component
