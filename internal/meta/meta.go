// Where: internal/meta/meta.go
// What: Project-local metadata constants.
// Why: Keep naming and path defaults in one place.
package meta

const (
	// Project Identity
	AppName   = "websmith"
	Slug      = "websmith"
	EnvPrefix = "WEBSMITH"

	// Directory Layout
	OutputDir = ".websmith"

	// Shared defaults
	DefaultSpecPath      = "site.yaml"
	DefaultContextPath   = "./cdk.context.json"
	DefaultIndexDocument = "index.html"
	DefaultConfigPrefix  = "/account-config"
	DefaultManagedGroup  = "CommonRuleSet"
	DefaultRateLimit     = 2000
	LogExpiryDays        = 90
	ErrorCacheTTLSeconds = 300
)
