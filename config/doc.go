// Package config loads service configuration from YAML files, .env files,
// and environment variables using viper and godotenv.
//
// Services embed ServiceConfig in their own config struct and call
// LoadConfig; environment variables override file values using dotted-key
// variants (SERVER_PORT binds both "server_port" and "server.port").
package config
