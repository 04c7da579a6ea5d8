// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - LinkSource: Loads (and optionally watches) the crop link table
//   - RecordStore: Resolves and loads normalised registration records
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Lookup history. Without it, lookups are not recorded.
//   - URLOpener: Opens links in a browser. Without it, links are only displayed.
//   - Clipboard: Copies record text. Without it, copy actions report unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
