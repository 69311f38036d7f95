// Package cassandra provides Cassandra-backed implementations of the employee schema manager and
// row repository, including connection/session management and per-API consistency customization.
package cassandra

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	log "log/slog"

	"github.com/gocql/gocql"
)

const (
	// DefaultHost is the contact point used when Config.ClusterHosts is empty.
	DefaultHost = "127.0.0.1:9042"
	// DefaultKeyspace is the keyspace used when Config.Keyspace is empty.
	DefaultKeyspace = "employee"
	// DefaultReplicationClause is a single node, SimpleStrategy replication.
	DefaultReplicationClause = "{'class':'SimpleStrategy', 'replication_factor':1}"
)

// Cassandra unquoted identifiers: alphanumerics and underscore, up to 48 characters.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,47}$`)

// Config contains configuration for connecting to a Cassandra cluster and the employee keyspace.
type Config struct {
	// ClusterHosts lists contact points ("host" or "host:port") for the Cassandra cluster.
	ClusterHosts []string
	// Keyspace is the keyspace holding the employee type and table.
	Keyspace string
	// Consistency is the default consistency level for queries.
	Consistency gocql.Consistency
	// ConnectionTimeout is the session connection timeout.
	ConnectionTimeout time.Duration
	// ReplicationClause defines the keyspace replication (e.g., SimpleStrategy).
	ReplicationClause string
	// Compression enables snappy frame compression.
	Compression bool

	// ConsistencyBook allows overriding per-API consistency levels.
	ConsistencyBook ConsistencyBook
}

// ConsistencyBook enumerates per-API consistency levels used by this package.
// A level left at gocql.Any means "use Config.Consistency".
// The CLI only sets Config.Consistency; the book is populated from Go code.
type ConsistencyBook struct {
	Schema    gocql.Consistency
	RowAdd    gocql.Consistency
	RowUpdate gocql.Consistency
	RowGet    gocql.Consistency
	RowRemove gocql.Consistency
}

// Connection wraps a Cassandra session and its configuration.
type Connection struct {
	Session *gocql.Session
	Config
}

var session *gocql.Session
var config Config
var refCount int
var mux sync.Mutex

// IsConnectionInstantiated reports whether a global Connection has been created.
func IsConnectionInstantiated() bool {
	mux.Lock()
	defer mux.Unlock()
	return session != nil
}

// ValidateKeyspace reports whether name is usable as an unquoted keyspace identifier.
func ValidateKeyspace(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid keyspace name %q", name)
	}
	return nil
}

// withDefaults fills in unset fields and validates the keyspace name, which is
// formatted into DDL and so cannot be bound as a parameter.
func (cfg Config) withDefaults() (Config, error) {
	if len(cfg.ClusterHosts) == 0 {
		cfg.ClusterHosts = []string{DefaultHost}
	}
	if cfg.Keyspace == "" {
		cfg.Keyspace = DefaultKeyspace
	}
	if err := ValidateKeyspace(cfg.Keyspace); err != nil {
		return cfg, err
	}
	if cfg.Consistency == gocql.Any {
		// Defaults to LocalQuorum consistency. You should set it to an appropriate level.
		cfg.Consistency = gocql.LocalQuorum
	}
	if cfg.ReplicationClause == "" {
		cfg.ReplicationClause = DefaultReplicationClause
	}
	return cfg, nil
}

func newClusterConfig(cfg Config) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.ClusterHosts...)
	cluster.Consistency = cfg.Consistency
	if cfg.ConnectionTimeout > 0 {
		cluster.ConnectTimeout = cfg.ConnectionTimeout
	}
	if cfg.Compression {
		cluster.Compressor = &gocql.SnappyCompressor{}
	}
	return cluster
}

// OpenConnection returns the existing global Connection or opens a new one using the provided config.
// The keyspace is not bound to the session, statements are fully qualified so that the keyspace
// can be created through the same session.
func OpenConnection(cfg Config) (*Connection, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	mux.Lock()
	defer mux.Unlock()

	if session == nil {
		log.Info("Opening Cassandra connection", "hosts", cfg.ClusterHosts, "keyspace", cfg.Keyspace)
		s, err := newClusterConfig(cfg).CreateSession()
		if err != nil {
			return nil, fmt.Errorf("failed to create cassandra session: %w", err)
		}
		session = s
		config = cfg
	}

	refCount++
	return &Connection{
		Session: session,
		Config:  cfg,
	}, nil
}

// GetGlobalConnection returns the global connection using the global configuration.
func GetGlobalConnection() (*Connection, error) {
	mux.Lock()
	defer mux.Unlock()

	if session == nil {
		return nil, fmt.Errorf("cassandra connection is closed; call OpenConnection(config) to open it")
	}

	return &Connection{
		Session: session,
		Config:  config,
	}, nil
}

// CloseConnection closes and clears the global connection, if it exists.
func CloseConnection() {
	mux.Lock()
	defer mux.Unlock()
	if session != nil {
		log.Info("Closing Cassandra connection")
		session.Close()
		session = nil
		refCount = 0
	}
}

// Close releases this connection. The session is closed when the last connection is released.
func (c *Connection) Close() {
	mux.Lock()
	defer mux.Unlock()
	refCount--
	if refCount <= 0 && session != nil {
		log.Info("Closing Cassandra connection")
		session.Close()
		session = nil
		refCount = 0
	}
}

// apply sets the per-API consistency override on qry when one is configured.
func apply(qry *gocql.Query, c gocql.Consistency) *gocql.Query {
	if c > gocql.Any {
		qry.Consistency(c)
	}
	return qry
}
