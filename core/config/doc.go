// Package config provides configuration management for the service.
//
// It uses Viper to read environment variables, after loading an optional
// .env file with godotenv.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: port, runtime mode, extra frontend origin, body limits
//   - Database: driver and connection details
//   - Storage: S3/MinIO credentials and the image bucket
//   - Log: logging level and format
//
// Every field is reachable as SECTION_FIELD (e.g. SERVER_PORT). Fields with
// an env tag also answer to a plain name (PORT, NODE_ENV, FRONTEND_URL);
// when both are set the SECTION_FIELD form wins.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	settings, err := cfg.Server.Settings()
package config
