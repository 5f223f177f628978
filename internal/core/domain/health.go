package domain

// HealthStatus is the outcome of probing one provider.
type HealthStatus string

const (
	HealthOK            HealthStatus = "ok"
	HealthError         HealthStatus = "error"
	HealthNotConfigured HealthStatus = "not_configured"
	HealthUnknown       HealthStatus = "unknown"
)

// ProviderHealth is one entry of the provider health snapshot.
type ProviderHealth struct {
	Configured bool         `json:"configured"`
	Status     HealthStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
}
