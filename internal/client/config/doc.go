// Package config loads runtime configuration for the auditkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. AUDITKEEPER_SERVER_ADDR, AUDITKEEPER_ONLINE_CHECK_INTERVAL and
//     AUDITKEEPER_REQUEST_TIMEOUT environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations can be strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s"
//	}
package config
