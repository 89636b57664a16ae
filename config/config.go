// Package config loads the settings of one mesh binary from the YAML file at CONFIG_PATH and
// environment overrides.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hotelmesh/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath     = "CONFIG_PATH"
	envGRPCPort       = "SERVICE_PORT_GRPC"
	envHTTPPort       = "SERVICE_PORT_HTTP"
	envRetryCount     = "RETRY_COUNT"
	envRetryDelayMs   = "RETRY_DELAY_MS"
	envRequestBudget  = "REQUEST_BUDGET_MS"
	envMetricsAddr    = "METRICS_ADDR"
	envJaegerEndpoint = "JAEGER_ENDPOINT"
	envRedisAddr      = "REDIS_ADDR"
	envKafkaBrokers   = "KAFKA_BROKERS"
	envKafkaTopic     = "KAFKA_TOPIC"
	envLedgerLocking  = "LEDGER_LOCKING"
)

// Ledger locking modes.
const (
	LedgerLockingGlobal   = "global"
	LedgerLockingPerHotel = "per_hotel"
)

const (
	defaultRequestBudgetMs = 100
	defaultRetryCount      = 3
	defaultRetryDelayMs    = 5
	defaultPoolRetryPasses = 1
	defaultPoolRetryDelay  = 1
	defaultWorkers         = 64
)

// Config is the validated configuration of one binary.
type Config struct {
	Service        domain.ServiceName
	ListenPort     int
	Services       map[domain.ServiceName]domain.Endpoint
	RequestBudget  time.Duration
	RetryCount     int
	RetryDelay     time.Duration
	PoolRetries    int
	PoolRetryDelay time.Duration
	MetricsAddr    string
	JaegerEndpoint string
	RedisAddr      string
	KafkaBrokers   string
	KafkaTopic     string
	LedgerLocking  string
}

// Self returns the endpoint of the service being configured.
func (c *Config) Self() domain.Endpoint {
	return c.Services[c.Service]
}

// Peers returns the endpoints this service calls, in domain.Downstreams order.
func (c *Config) Peers() []domain.Endpoint {
	names := domain.Downstreams[c.Service]
	out := make([]domain.Endpoint, 0, len(names))
	for _, name := range names {
		out = append(out, c.Services[name])
	}
	return out
}

// ListenAddr is the address the service's server binds.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.ListenPort)
}

type yamlConfig struct {
	RequestBudgetMs *int                   `yaml:"request_budget_ms"`
	Retry           yamlRetry              `yaml:"retry"`
	Pool            yamlPool               `yaml:"pool"`
	MetricsAddr     string                 `yaml:"metrics_addr"`
	JaegerEndpoint  string                 `yaml:"jaeger_endpoint"`
	RedisAddr       string                 `yaml:"redis_addr"`
	Kafka           yamlKafka              `yaml:"kafka"`
	LedgerLocking   string                 `yaml:"ledger_locking"`
	Services        map[string]yamlService `yaml:"services"`
}

type yamlRetry struct {
	Count   *int `yaml:"count"`
	DelayMs *int `yaml:"delay_ms"`
}

type yamlPool struct {
	RetryPasses  *int `yaml:"retry_passes"`
	RetryDelayMs *int `yaml:"retry_delay_ms"`
}

type yamlKafka struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

type yamlService struct {
	Address  string `yaml:"address"`
	PoolSize int    `yaml:"pool_size"`
	Workers  int    `yaml:"workers"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Load builds the configuration of service from the YAML file at CONFIG_PATH and the
// environment. Environment values override the file.
//
// Returns: (*Config, nil) on success; (nil, error) naming the offending key when CONFIG_PATH is
// missing, the file cannot be read, service or one of its downstreams has no address, a
// downstream has no positive pool_size, or a number or mode is out of range.
//
// Called from every binary at startup.
func Load(service domain.ServiceName) (*Config, error) {
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	cfg := &Config{
		Service:        service,
		Services:       make(map[domain.ServiceName]domain.Endpoint, len(raw.Services)),
		MetricsAddr:    envOr(envMetricsAddr, raw.MetricsAddr),
		JaegerEndpoint: envOr(envJaegerEndpoint, raw.JaegerEndpoint),
		RedisAddr:      envOr(envRedisAddr, raw.RedisAddr),
		KafkaBrokers:   envOr(envKafkaBrokers, raw.Kafka.Brokers),
		KafkaTopic:     envOr(envKafkaTopic, raw.Kafka.Topic),
		LedgerLocking:  envOr(envLedgerLocking, raw.LedgerLocking),
	}

	for name, s := range raw.Services {
		workers := s.Workers
		if workers == 0 {
			workers = defaultWorkers
		}
		if workers < 0 || s.PoolSize < 0 {
			return nil, fmt.Errorf("services.%s: workers and pool_size must not be negative", name)
		}
		cfg.Services[domain.ServiceName(name)] = domain.Endpoint{
			Name:     domain.ServiceName(name),
			Address:  strings.TrimSpace(s.Address),
			PoolSize: s.PoolSize,
			Workers:  workers,
		}
	}

	self, ok := cfg.Services[service]
	if !ok || self.Address == "" {
		return nil, fmt.Errorf("services.%s.address is required", service)
	}
	for _, peer := range domain.Downstreams[service] {
		ep, ok := cfg.Services[peer]
		if !ok || ep.Address == "" {
			return nil, fmt.Errorf("services.%s.address is required by %s", peer, service)
		}
		if ep.PoolSize <= 0 {
			return nil, fmt.Errorf("services.%s.pool_size must be positive, it is dialed by %s", peer, service)
		}
	}

	portEnv := envGRPCPort
	if service == domain.ServiceFrontend {
		portEnv = envHTTPPort
	}
	if cfg.ListenPort, err = listenPort(portEnv, self.Address); err != nil {
		return nil, err
	}

	budgetMs, err := intSetting(envRequestBudget, intOr(raw.RequestBudgetMs, defaultRequestBudgetMs), 1)
	if err != nil {
		return nil, err
	}
	cfg.RequestBudget = time.Duration(budgetMs) * time.Millisecond

	if cfg.RetryCount, err = intSetting(envRetryCount, intOr(raw.Retry.Count, defaultRetryCount), 1); err != nil {
		return nil, err
	}
	retryDelayMs, err := intSetting(envRetryDelayMs, intOr(raw.Retry.DelayMs, defaultRetryDelayMs), 0)
	if err != nil {
		return nil, err
	}
	cfg.RetryDelay = time.Duration(retryDelayMs) * time.Millisecond

	cfg.PoolRetries = intOr(raw.Pool.RetryPasses, defaultPoolRetryPasses)
	poolDelayMs := intOr(raw.Pool.RetryDelayMs, defaultPoolRetryDelay)
	if cfg.PoolRetries < 0 || poolDelayMs < 0 {
		return nil, fmt.Errorf("pool.retry_passes and pool.retry_delay_ms must not be negative")
	}
	cfg.PoolRetryDelay = time.Duration(poolDelayMs) * time.Millisecond

	switch cfg.LedgerLocking {
	case "":
		cfg.LedgerLocking = LedgerLockingGlobal
	case LedgerLockingGlobal, LedgerLockingPerHotel:
	default:
		return nil, fmt.Errorf("%s must be %s|%s, got %q", envLedgerLocking, LedgerLockingGlobal, LedgerLockingPerHotel, cfg.LedgerLocking)
	}
	return cfg, nil
}

// listenPort takes the port from env when set, else from the port part of address.
func listenPort(env, address string) (int, error) {
	portStr := strings.TrimSpace(os.Getenv(env))
	source := env
	if portStr == "" {
		_, p, err := net.SplitHostPort(address)
		if err != nil {
			return 0, fmt.Errorf("address %q has no port and %s is not set", address, env)
		}
		portStr, source = p, "address "+address
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be a valid port (1-65535), got %q", source, portStr)
	}
	return port, nil
}

// intSetting returns env parsed as an integer when set, else fallback; values below min fail.
func intSetting(env string, fallback, min int) (int, error) {
	s := strings.TrimSpace(os.Getenv(env))
	if s == "" {
		if fallback < min {
			return 0, fmt.Errorf("%s must be at least %d, got %d", env, min, fallback)
		}
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < min {
		return 0, fmt.Errorf("%s must be an integer of at least %d, got %q", env, min, s)
	}
	return v, nil
}

func envOr(env, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	return strings.TrimSpace(fallback)
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
