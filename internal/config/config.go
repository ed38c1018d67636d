package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName     xml.Name         `xml:"API"`
	RequestDump bool             `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig    `xml:"CONTEXT"`
	DB          DBConfig         `xml:"DB"`
	Engine      EngineConfig     `xml:"ENGINE"`
	Quiz        QuizConfig       `xml:"QUIZ"`
	ThirdParty  ThirdPartyConfig `xml:"THIRD_PARTY"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port      int     `xml:"PORT"`
	Host      string  `xml:"HOST"`
	TimeZone  string  `xml:"TIME_ZONE"`
	RateLimit float64 `xml:"RATE_LIMIT"`
	RateBurst int     `xml:"RATE_BURST"`
}

// EngineConfig holds the scoring weights and ranking defaults.
type EngineConfig struct {
	CareersFile      string  `xml:"CAREERS_FILE"`
	SimilarityWeight float64 `xml:"SIMILARITY_WEIGHT"`
	AptitudeWeight   float64 `xml:"APTITUDE_WEIGHT"`
	InterestWeight   float64 `xml:"INTEREST_WEIGHT"`
	DefaultTopK      int     `xml:"DEFAULT_TOP_K"`
}

// QuizConfig holds question-selection settings.
type QuizConfig struct {
	QuestionsPerSection int `xml:"QUESTIONS_PER_SECTION"`
	ExclusionHours      int `xml:"EXCLUSION_HOURS"`
	RetentionDays       int `xml:"RETENTION_DAYS"`
}

// ThirdPartyConfig holds external service endpoints.
type ThirdPartyConfig struct {
	OllamaURL       string `xml:"OLLAMA_URL"`
	EmbedderURL     string `xml:"EMBEDDER_URL"`
	EmbedderTimeout int    `xml:"EMBEDDER_TIMEOUT"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Driver     string       `xml:"DRIVER"`
	SSLMode    string       `xml:"SSL_MODE"`
	Names      DBNames      `xml:"NAMES"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBNames holds the names defined in the DB section.
type DBNames struct {
	Pathfinder string `xml:"PATHFINDER,attr"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyDefaults(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

func applyDefaults(c *APIConfig) {
	if c.Engine.SimilarityWeight == 0 && c.Engine.AptitudeWeight == 0 && c.Engine.InterestWeight == 0 {
		c.Engine.SimilarityWeight = 0.6
		c.Engine.AptitudeWeight = 0.2
		c.Engine.InterestWeight = 0.2
	}
	if c.Engine.DefaultTopK == 0 {
		c.Engine.DefaultTopK = 10
	}
	if c.Engine.CareersFile == "" {
		c.Engine.CareersFile = "data/careers.json"
	}
	if c.Quiz.QuestionsPerSection == 0 {
		c.Quiz.QuestionsPerSection = 10
	}
	if c.Quiz.ExclusionHours == 0 {
		c.Quiz.ExclusionHours = 24
	}
	if c.Quiz.RetentionDays == 0 {
		c.Quiz.RetentionDays = 7
	}
	if c.ThirdParty.EmbedderTimeout == 0 {
		c.ThirdParty.EmbedderTimeout = 10
	}
	if c.Context.RateLimit == 0 {
		c.Context.RateLimit = 20
	}
	if c.Context.RateBurst == 0 {
		c.Context.RateBurst = 40
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
