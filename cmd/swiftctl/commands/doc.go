// Package commands defines the swiftctl demo console.
//
// Commands
//
//   - quote    Ask the model for a freight quote
//   - track    Look a shipment up by tracking id
//   - chat     Talk to SwiftBot on stdin/stdout
//   - migrate  Apply the shipment store migrations
//
// # Implementation
//
// The root command loads configuration and builds the provider client before
// any subcommand runs. Tracking uses the Postgres store when DATABASE_URL is
// set and the demo record otherwise, the same as the HTTP server.
package commands
