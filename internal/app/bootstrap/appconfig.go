// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request body size limits. AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// Flash-message cookie configuration
	SessionKey string // Secret key for signing the flash cookie (must be strong in production)

	// Image upload configuration
	StorageLocalPath string // Directory uploaded images are written to (e.g., "./uploads")
	StorageLocalURL  string // URL prefix the images are served under (e.g., "/uploads")
	MaxUploadMB      int    // Per-file upload cap in megabytes
}
