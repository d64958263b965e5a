// Where: internal/website/spec.go
// What: Website topology input types.
// Why: One compact spec expands into the whole resource graph.
package website

// Spec is the caller-supplied description of a secure static-content
// distribution. Only DomainName is mandatory; every other field has a
// documented default applied by Derive.
type Spec struct {
	DomainName      string    `json:"domainName" yaml:"domainName"`
	HostedZoneID    string    `json:"hostedZoneId,omitempty" yaml:"hostedZoneId,omitempty"`
	BucketName      string    `json:"bucketName,omitempty" yaml:"bucketName,omitempty"`
	Comment         string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	IndexDocument   string    `json:"indexDocument,omitempty" yaml:"indexDocument,omitempty"`
	ErrorDocument   string    `json:"errorDocument,omitempty" yaml:"errorDocument,omitempty"`
	EnableWaf       *bool     `json:"enableWaf,omitempty" yaml:"enableWaf,omitempty"`
	EnableLogging   bool      `json:"enableLogging,omitempty" yaml:"enableLogging,omitempty"`
	WafRules        []WafRule `json:"wafRules,omitempty" yaml:"wafRules,omitempty"`
	CodeSourcePath  string    `json:"codeSourcePath,omitempty" yaml:"codeSourcePath,omitempty"`
	RetentionPolicy string    `json:"retentionPolicy,omitempty" yaml:"retentionPolicy,omitempty"`
	DomainAliases   []string  `json:"domainAliases,omitempty" yaml:"domainAliases,omitempty"`
	LogBucketName   string    `json:"logBucketName,omitempty" yaml:"logBucketName,omitempty"`
}

// WafRule describes one firewall rule. Name doubles as the rule's metric
// name; priority orders evaluation. The payload fields are read according
// to RuleType and ignored otherwise.
type WafRule struct {
	Name          string   `json:"name" yaml:"name"`
	Priority      int      `json:"priority" yaml:"priority"`
	Action        string   `json:"action" yaml:"action"`
	RuleType      string   `json:"ruleType" yaml:"ruleType"`
	Limit         *int     `json:"limit,omitempty" yaml:"limit,omitempty"`
	CountryCodes  []string `json:"countryCodes,omitempty" yaml:"countryCodes,omitempty"`
	Addresses     []string `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	RuleGroupName string   `json:"ruleGroupName,omitempty" yaml:"ruleGroupName,omitempty"`
}

// Rule actions.
const (
	ActionAllow = "allow"
	ActionBlock = "block"
	ActionCount = "count"
)

// Rule types.
const (
	RuleTypeRateLimit   = "rate_limit"
	RuleTypeGeoBlock    = "geo_block"
	RuleTypeIPSet       = "ip_set"
	RuleTypeManagedRule = "managed_rule"
)
