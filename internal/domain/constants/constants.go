// Package constants holds provider identifiers used in configuration.
package constants

// Storage provider identifiers.
const (
	StorageProviderLocal    = "local"
	StorageProviderPostgres = "postgres"
)

// PubSub provider identifiers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
