package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the fetch stage, which talks to the
// NCBI E-utilities.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of papers to request (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Tool identifies the calling application to the E-utilities, per
	// the NCBI usage policy.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the maintainer contact sent with every request, per the
	// NCBI usage policy.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key for a higher rate allowance.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}
