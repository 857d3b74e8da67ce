package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-secret-key token signing key
//	-access-token-ttl access token lifetime (e.g., "30m")
//	-refresh-token-ttl refresh token lifetime (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma-separated CORS origins
//	-debug enable debug logging
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var accessTokenTTL time.Duration
	var refreshTokenTTL time.Duration
	var requestTimeout time.Duration
	var allowedOrigins string
	var debug bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "secret-key", "", "Token signing key")
	flag.DurationVar(&accessTokenTTL, "access-token-ttl", 0, "Access token lifetime (e.g., 30m)")
	flag.DurationVar(&refreshTokenTTL, "refresh-token-ttl", 0, "Refresh token lifetime (e.g., 168h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origins")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:    tokenSignKey,
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
			Debug:           debug,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitOrigins(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitOrigins turns a comma-separated origin list into a slice,
// trimming whitespace and dropping empty entries.
func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}

	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}

	return result
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
