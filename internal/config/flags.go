package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line into a *StructuredConfig.
// See parseFlags for the accepted flags.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags registers all configuration flags on fs and parses args.
//
// Flags:
//
//	-a                    read API address in format [host]:[port]
//	-d                    database DSN (SQLite path or postgres:// URL)
//	-c/-config            json file path with configs
//	-kdf-salt             base64 master password salt
//	-org-keys             organization keys JSON file path
//	-strict               reject records of unknown type
//	-v                    verbose logging
//	-request-timeout      request timeout (e.g., "30s", "1m")
//	-decrypt-concurrency  records decrypted in parallel when listing
//	-remote               base URL of a remote read API
//	-token-issuer         access token issuer
//	-token-duration       lifetime of issued access tokens (e.g., "24h")
//
// Secrets (master password, token sign key, access token) are not flags:
// command lines leak through process listings.
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var kdfSalt string
	var orgKeysFile string
	var strictTypes bool
	var verbose bool
	var requestTimeout time.Duration
	var decryptConcurrency int
	var remoteAddress string
	var tokenIssuer string
	var tokenDuration time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&kdfSalt, "kdf-salt", "", "Base64 master password salt")
	fs.StringVar(&orgKeysFile, "org-keys", "", "Organization keys JSON file")
	fs.BoolVar(&strictTypes, "strict", false, "Reject records of unknown type")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&decryptConcurrency, "decrypt-concurrency", 0, "Records decrypted in parallel")
	fs.StringVar(&remoteAddress, "remote", "", "Remote read API base URL")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Access token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Access token lifetime (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			KDFSalt:     kdfSalt,
			OrgKeysFile: orgKeysFile,
			StrictTypes: strictTypes,
			Verbose:     verbose,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Workers: Workers{
			DecryptConcurrency: decryptConcurrency,
		},
		Client: Client{
			RemoteAddress: remoteAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns "" if neither Host nor Port is set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
