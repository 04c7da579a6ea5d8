// Package services implements the driving port interfaces.
// Services hold the lookup rules (validation, filtering, outcome
// classification) and orchestrate calls to driven ports (adapters).
//
// Services are pure Go and never touch the filesystem directly.
package services
