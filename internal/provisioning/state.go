package provisioning

// StepFailure records a best-effort step that failed without aborting the
// run.
type StepFailure struct {
	Step string
	Err  error
}

// State holds the shared results of provisioning steps.
// It is progressively populated as each step completes and is read by
// subsequent steps that need earlier results.
type State struct {
	// Preflight results
	TenantID         string
	ObjectID         string
	SubscriptionName string

	// Storage results (populated by the storage step)
	StorageKey string

	// Database results (populated by the database step)
	ServerFQDN string

	// Vault results (populated by the vault and secret steps)
	VaultURI   string
	SecretURIs map[string]string // secret name -> versioned secret URI

	// Telemetry results
	InstrumentationKey  string
	TelemetryConnection string

	// Web app results
	PlanID      string
	PrincipalID string
	Hostname    string

	// Artifact results
	ArtifactPaths []string
	SummaryPath   string

	// Failures collects best-effort steps that failed; the run continued
	// past them and the summary reports them.
	Failures []StepFailure
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		SecretURIs: make(map[string]string),
	}
}

// SecretURI returns the stored URI for a secret name, or the empty string if
// the secret was never written.
func (s *State) SecretURI(name string) string {
	return s.SecretURIs[name]
}
