package cassandra

import (
	"testing"
	"time"

	"github.com/gocql/gocql"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg, err := Config{}.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults failed: %v", err)
	}
	if len(cfg.ClusterHosts) != 1 || cfg.ClusterHosts[0] != DefaultHost {
		t.Errorf("ClusterHosts = %v, want [%s]", cfg.ClusterHosts, DefaultHost)
	}
	if cfg.Keyspace != DefaultKeyspace {
		t.Errorf("Keyspace = %s, want %s", cfg.Keyspace, DefaultKeyspace)
	}
	if cfg.Consistency != gocql.LocalQuorum {
		t.Errorf("Consistency = %v, want LOCAL_QUORUM", cfg.Consistency)
	}
	if cfg.ReplicationClause != DefaultReplicationClause {
		t.Errorf("ReplicationClause = %s, want %s", cfg.ReplicationClause, DefaultReplicationClause)
	}
}

func TestConfig_WithDefaults_KeepsExplicitValues(t *testing.T) {
	in := Config{
		ClusterHosts:      []string{"10.0.0.1", "10.0.0.2:9142"},
		Keyspace:          "hr_2024",
		Consistency:       gocql.One,
		ReplicationClause: "{'class':'NetworkTopologyStrategy', 'dc1':3}",
	}
	cfg, err := in.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults failed: %v", err)
	}
	if len(cfg.ClusterHosts) != 2 || cfg.Keyspace != "hr_2024" || cfg.Consistency != gocql.One || cfg.ReplicationClause != in.ReplicationClause {
		t.Errorf("withDefaults overwrote explicit values, got %+v", cfg)
	}
}

func TestConfig_WithDefaults_RejectsBadKeyspace(t *testing.T) {
	for _, ks := range []string{"emp; DROP KEYSPACE system", "1abc", "a-b", "x23456789012345678901234567890123456789012345678Z"} {
		if _, err := (Config{Keyspace: ks}).withDefaults(); err == nil {
			t.Errorf("withDefaults(%q) succeeded, want error", ks)
		}
	}
}

func TestNewClusterConfig(t *testing.T) {
	cfg, _ := Config{ConnectionTimeout: 3 * time.Second, Compression: true, Consistency: gocql.Quorum}.withDefaults()
	cluster := newClusterConfig(cfg)

	if len(cluster.Hosts) != 1 || cluster.Hosts[0] != DefaultHost {
		t.Errorf("Hosts = %v, want [%s]", cluster.Hosts, DefaultHost)
	}
	if cluster.Consistency != gocql.Quorum {
		t.Errorf("Consistency = %v, want QUORUM", cluster.Consistency)
	}
	if cluster.ConnectTimeout != 3*time.Second {
		t.Errorf("ConnectTimeout = %v, want 3s", cluster.ConnectTimeout)
	}
	if _, ok := cluster.Compressor.(*gocql.SnappyCompressor); !ok {
		t.Errorf("Compressor = %T, want *gocql.SnappyCompressor", cluster.Compressor)
	}
	if cluster.Keyspace != "" {
		t.Errorf("Keyspace = %q, session must not be bound to a keyspace", cluster.Keyspace)
	}
}

func TestGetGlobalConnection_WhenClosed(t *testing.T) {
	CloseConnection()
	if IsConnectionInstantiated() {
		t.Fatal("IsConnectionInstantiated() = true after CloseConnection")
	}
	if _, err := GetGlobalConnection(); err == nil {
		t.Error("GetGlobalConnection() succeeded with no session, want error")
	}
	if err := NewSchemaManager(nil).CreateKeyspace(ctx); err == nil {
		t.Error("CreateKeyspace() succeeded with no session, want error")
	}
	if _, err := NewRowRepository(nil).GetAll(ctx); err == nil {
		t.Error("GetAll() succeeded with no session, want error")
	}
}

func TestRowRepository_GetNoIDs(t *testing.T) {
	rows, err := NewRowRepository(nil).Get(ctx)
	if err != nil || rows != nil {
		t.Errorf("Get() = %v, %v, want nil, nil", rows, err)
	}
}

func TestApply_ConsistencyOverride(t *testing.T) {
	tests := []struct {
		name     string
		override gocql.Consistency
		want     gocql.Consistency
	}{
		{"unset keeps session level", gocql.Any, gocql.Quorum},
		{"one", gocql.One, gocql.One},
		{"local one", gocql.LocalOne, gocql.LocalOne},
		{"all", gocql.All, gocql.All},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qry := (&gocql.Query{}).Consistency(gocql.Quorum)
			if got := apply(qry, tt.override).GetConsistency(); got != tt.want {
				t.Errorf("apply(%v) consistency = %v, want %v", tt.override, got, tt.want)
			}
		})
	}
}

func TestValidateKeyspace(t *testing.T) {
	for _, ks := range []string{"employee", "hr_2024", "A"} {
		if err := ValidateKeyspace(ks); err != nil {
			t.Errorf("ValidateKeyspace(%q) = %v, want nil", ks, err)
		}
	}
	if err := ValidateKeyspace(""); err == nil {
		t.Error("ValidateKeyspace(\"\") succeeded, want error")
	}
}
