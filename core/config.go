package core

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// defaultColumnHints are substrings that flag a column header as PHI-bearing.
// Headers are lowercased and stripped to alphanumerics before matching, so
// "Patient_Email" matches the "email" hint.
var defaultColumnHints = []string{
	"name", "patient", "firstname", "lastname", "middlename",
	"dob", "dateofbirth", "birthdate", "birth",
	"address", "street", "city", "state", "zip", "zipcode", "postal",
	"phone", "telephone", "mobile", "cell", "fax",
	"email", "mail",
	"ssn", "social", "socialsecurity",
	"mrn", "medicalrecord", "recordnumber", "patientid",
	"insurance", "policy", "member", "group", "subscriber",
}

// CustomRecognizerConfig controls the built-in pattern recognizers.
type CustomRecognizerConfig struct {
	// Enabled switches the whole custom recognizer set on or off.
	Enabled bool `yaml:"enabled"`

	// MRNPattern is the site-specific medical record number regex.
	MRNPattern string `yaml:"mrn_pattern"`
}

// Config holds one run's settings. It is immutable once handed to an Engine;
// changing settings means building a new Config and calling UpdateConfig,
// which reconstructs the analyzer from scratch.
type Config struct {
	// EnabledEntities lists the entity types requested from the analyzer.
	EnabledEntities []string `yaml:"enabled_entities"`

	// AnonymizationStrategy is "replace" or "hash".
	AnonymizationStrategy Strategy `yaml:"anonymization_strategy"`

	// ColumnRedactionHints mark whole columns for unconditional redaction.
	ColumnRedactionHints []string `yaml:"column_redaction_hints"`

	// OutputSuffix is appended to the input base name when no output path
	// is given.
	OutputSuffix string `yaml:"output_suffix"`

	// SpacyModel names the NLP model an NER-backed analyzer would load.
	// Informational for the built-in pattern analyzer.
	SpacyModel string `yaml:"spacy_model"`

	// ConfidenceThreshold is the minimum score a span needs to survive,
	// in [0, 1].
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	CustomRecognizers CustomRecognizerConfig `yaml:"custom_recognizers"`
}

// DefaultConfig returns the built-in configuration used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		EnabledEntities: []string{
			"PERSON", "EMAIL_ADDRESS", "PHONE_NUMBER",
			"US_SSN", "DATE_TIME", "LOCATION", "MEDICAL_LICENSE",
			"NRP", "CREDIT_CARD", "IBAN_CODE", "IP_ADDRESS",
			"MEDICAL_RECORD_NUMBER",
		},
		AnonymizationStrategy: StrategyReplace,
		ColumnRedactionHints:  defaultColumnHints,
		OutputSuffix:          "_redacted",
		SpacyModel:            "en_core_web_md",
		// Low threshold on purpose: name detection suffers badly above this.
		ConfidenceThreshold: 0.20,
		CustomRecognizers: CustomRecognizerConfig{
			Enabled:    true,
			MRNPattern: `\b[A-Z]{2}\d{6}\b`, // Example: AB123456
		},
	}
}

// LoadConfig reads a YAML config file, layering it over the defaults so
// omitted keys keep their built-in values. A missing file (empty path or
// nonexistent) yields the defaults. A malformed file or invalid values
// return a config-category error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, newEngineError(CategoryConfig, "failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, newEngineError(CategoryConfig, "failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values no safe default can repair.
func (c *Config) Validate() error {
	if len(c.EnabledEntities) == 0 {
		return newEngineError(CategoryConfig, "enabled_entities must not be empty")
	}
	switch c.AnonymizationStrategy {
	case StrategyReplace, StrategyHash:
	default:
		return newEngineError(CategoryConfig, "unknown anonymization_strategy %q", c.AnonymizationStrategy)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return newEngineError(CategoryConfig, "confidence_threshold %v outside [0, 1]", c.ConfidenceThreshold)
	}
	if c.CustomRecognizers.Enabled && c.CustomRecognizers.MRNPattern != "" {
		if _, err := regexp.Compile(c.CustomRecognizers.MRNPattern); err != nil {
			return newEngineError(CategoryConfig, "invalid mrn_pattern: %w", err)
		}
	}
	return nil
}

// String renders the config as YAML, handy for run logs.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config<marshal error: %v>", err)
	}
	return string(data)
}
