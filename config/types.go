package config

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Store         StoreConfig         `mapstructure:"store"`
	Document      DocumentConfig      `mapstructure:"document"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StoreConfig points at the xlsx workbook acting as the tabular store and
// names the sheet per entity kind.
type StoreConfig struct {
	WorkbookPath     string `mapstructure:"workbook_path"`
	PatientSheet     string `mapstructure:"patient_sheet"`
	ReservationSheet string `mapstructure:"reservation_sheet"`
	TreatmentSheet   string `mapstructure:"treatment_sheet"`
	ProductSheet     string `mapstructure:"product_sheet"`
	TherapistSheet   string `mapstructure:"therapist_sheet"`
}

type DocumentConfig struct {
	TemplatePath string `mapstructure:"template_path"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (c *Config) Validate() error {
	return nil
}

// applyDefaults fills in values a fresh deployment can run with.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Store.WorkbookPath == "" {
		c.Store.WorkbookPath = "data/klinik.xlsx"
	}
	if c.Store.PatientSheet == "" {
		c.Store.PatientSheet = "Pasien"
	}
	if c.Store.ReservationSheet == "" {
		c.Store.ReservationSheet = "Reservasi"
	}
	if c.Store.TreatmentSheet == "" {
		c.Store.TreatmentSheet = "Treatments"
	}
	if c.Store.ProductSheet == "" {
		c.Store.ProductSheet = "Products"
	}
	if c.Store.TherapistSheet == "" {
		c.Store.TherapistSheet = "Terapis"
	}
	if c.Document.TemplatePath == "" {
		c.Document.TemplatePath = "templates/status_pasien.txt"
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "klinik_backend"
	}
}
