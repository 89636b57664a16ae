package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotelmesh/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meshYAML = `
request_budget_ms: 150
retry:
  count: 2
  delay_ms: 10
pool:
  retry_passes: 3
  retry_delay_ms: 2
metrics_addr: ":9100"
kafka:
  brokers: "kafka:9092"
services:
  frontend:       {address: "frontend:5000", workers: 512}
  search:         {address: "search:8082", pool_size: 100, workers: 100}
  geo:            {address: "geo:8083", pool_size: 256, workers: 256}
  rate:           {address: "rate:8084", pool_size: 128}
  profile:        {address: "profile:8081", pool_size: 256}
  recommendation: {address: "recommendation:8085", pool_size: 64}
  reservation:    {address: "reservation:8087", pool_size: 64}
  user:           {address: "user:8086", pool_size: 64}
`

func writeConfig(t *testing.T, content string) {
	t.Helper()
	for _, env := range []string{
		envGRPCPort, envHTTPPort, envRetryCount, envRetryDelayMs, envRequestBudget, envMetricsAddr,
		envJaegerEndpoint, envRedisAddr, envKafkaBrokers, envKafkaTopic, envLedgerLocking,
	} {
		t.Setenv(env, "")
	}
	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(envConfigPath, path)
}

func TestLoad_YAML(t *testing.T) {
	writeConfig(t, meshYAML)

	cfg, err := Load(domain.ServiceSearch)
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceSearch, cfg.Service)
	assert.Equal(t, 8082, cfg.ListenPort)
	assert.Equal(t, ":8082", cfg.ListenAddr())
	assert.Equal(t, 150*time.Millisecond, cfg.RequestBudget)
	assert.Equal(t, 2, cfg.RetryCount)
	assert.Equal(t, 10*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 3, cfg.PoolRetries)
	assert.Equal(t, 2*time.Millisecond, cfg.PoolRetryDelay)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "kafka:9092", cfg.KafkaBrokers)
	assert.Equal(t, LedgerLockingGlobal, cfg.LedgerLocking)
	assert.Equal(t, 100, cfg.Self().Workers)

	peers := cfg.Peers()
	require.Len(t, peers, 3)
	assert.Equal(t, domain.Endpoint{Name: domain.ServiceGeo, Address: "geo:8083", PoolSize: 256, Workers: 256}, peers[0])
	assert.Equal(t, domain.ServiceRate, peers[1].Name)
	assert.Equal(t, defaultWorkers, peers[1].Workers)
	assert.Equal(t, domain.ServiceProfile, peers[2].Name)
}

func TestLoad_Defaults(t *testing.T) {
	writeConfig(t, `
services:
  geo: {address: "geo:8083"}
`)
	cfg, err := Load(domain.ServiceGeo)
	require.NoError(t, err)
	assert.Equal(t, defaultRequestBudgetMs*time.Millisecond, cfg.RequestBudget)
	assert.Equal(t, defaultRetryCount, cfg.RetryCount)
	assert.Equal(t, defaultRetryDelayMs*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, defaultPoolRetryPasses, cfg.PoolRetries)
	assert.Equal(t, time.Millisecond, cfg.PoolRetryDelay)
	assert.Empty(t, cfg.Peers())
}

func TestLoad_EnvOverrides(t *testing.T) {
	writeConfig(t, meshYAML)
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envRetryCount, "5")
	t.Setenv(envRetryDelayMs, "0")
	t.Setenv(envRequestBudget, "250")
	t.Setenv(envMetricsAddr, ":9200")
	t.Setenv(envJaegerEndpoint, "http://jaeger:14268/api/traces")
	t.Setenv(envRedisAddr, "redis:6379")
	t.Setenv(envKafkaTopic, "bookings")
	t.Setenv(envLedgerLocking, LedgerLockingPerHotel)

	cfg, err := Load(domain.ServiceFrontend)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ListenPort)
	assert.Equal(t, 5, cfg.RetryCount)
	assert.Zero(t, cfg.RetryDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestBudget)
	assert.Equal(t, ":9200", cfg.MetricsAddr)
	assert.Equal(t, "http://jaeger:14268/api/traces", cfg.JaegerEndpoint)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "bookings", cfg.KafkaTopic)
	assert.Equal(t, LedgerLockingPerHotel, cfg.LedgerLocking)
	assert.Len(t, cfg.Peers(), 4)

	t.Setenv(envGRPCPort, "9999")
	cfg, err = Load(domain.ServiceGeo)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.ListenPort)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		service domain.ServiceName
		wantErr string
	}{
		{
			name:    "unknown service",
			yaml:    meshYAML,
			service: "billing",
			wantErr: "services.billing.address is required",
		},
		{
			name:    "missing downstream",
			yaml:    "services:\n  search: {address: \"search:8082\"}\n  geo: {address: \"geo:8083\", pool_size: 4}\n",
			service: domain.ServiceSearch,
			wantErr: "services.rate.address is required by search",
		},
		{
			name:    "downstream without pool",
			yaml:    "services:\n  reservation: {address: \"reservation:8087\"}\n  user: {address: \"user:8086\"}\n",
			service: domain.ServiceReservation,
			wantErr: "services.user.pool_size must be positive",
		},
		{
			name:    "address without port",
			yaml:    "services:\n  geo: {address: \"geo\"}\n",
			service: domain.ServiceGeo,
			wantErr: "has no port",
		},
		{
			name:    "bad port env",
			yaml:    meshYAML,
			env:     map[string]string{envGRPCPort: "70000"},
			service: domain.ServiceGeo,
			wantErr: envGRPCPort,
		},
		{
			name:    "bad retry count",
			yaml:    meshYAML,
			env:     map[string]string{envRetryCount: "0"},
			service: domain.ServiceGeo,
			wantErr: envRetryCount,
		},
		{
			name:    "bad ledger locking",
			yaml:    meshYAML,
			env:     map[string]string{envLedgerLocking: "optimistic"},
			service: domain.ServiceReservation,
			wantErr: envLedgerLocking,
		},
		{
			name:    "invalid yaml",
			yaml:    "services: [",
			service: domain.ServiceGeo,
			wantErr: "load config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.yaml)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(tt.service)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ConfigPathMissing(t *testing.T) {
	t.Setenv(envConfigPath, "")
	_, err := Load(domain.ServiceGeo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), envConfigPath)

	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err = Load(domain.ServiceGeo)
	assert.Error(t, err)
}

func TestLoad_ShippedConfig(t *testing.T) {
	path, err := filepath.Abs("mesh.yaml")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	writeConfig(t, string(content))

	for _, name := range domain.AllServices {
		t.Run(string(name), func(t *testing.T) {
			cfg, err := Load(name)
			require.NoError(t, err)
			assert.Len(t, cfg.Peers(), len(domain.Downstreams[name]))
			assert.Positive(t, cfg.Self().Workers)
		})
	}
}
