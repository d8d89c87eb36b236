// Package constants holds names shared by configuration and infrastructure.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Blob storage URL schemes accepted by the image store.
const (
	StorageSchemeFile = "file"
	StorageSchemeMem  = "mem"
	StorageSchemeGCS  = "gs"
)
