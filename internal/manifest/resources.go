// Where: internal/manifest/resources.go
// What: Typed property sets for every declared resource kind.
// Why: The provisioning engine consumes these shapes; keep them free of
//      policy-specific dependencies.
package manifest

// Resource kind tags used across the graph and the emitted manifest.
const (
	KindCertificate         = "certificate"
	KindBucket              = "bucket"
	KindIPSet               = "ip-set"
	KindWebACL              = "web-acl"
	KindOriginAccessControl = "origin-access-control"
	KindDistribution        = "distribution"
	KindBucketPolicy        = "bucket-policy"
	KindRecordSet           = "dns-record"
	KindContentSync         = "content-sync"
	KindParameter           = "parameter"
)

// Retention policies for stores.
const (
	RetentionRetain  = "retain"
	RetentionDestroy = "destroy"
)

// CertificateProps declares a DNS-validated certificate.
type CertificateProps struct {
	DomainName              string   `json:"DomainName" yaml:"DomainName"`
	SubjectAlternativeNames []string `json:"SubjectAlternativeNames,omitempty" yaml:"SubjectAlternativeNames,omitempty"`
	ValidationZoneID        string   `json:"ValidationZoneId" yaml:"ValidationZoneId"`
	ValidationMethod        string   `json:"ValidationMethod" yaml:"ValidationMethod"`
}

// BucketProps declares a private content or log store.
type BucketProps struct {
	BucketName          string          `json:"BucketName,omitempty" yaml:"BucketName,omitempty"`
	Versioned           bool            `json:"Versioned" yaml:"Versioned"`
	Encryption          string          `json:"Encryption" yaml:"Encryption"`
	PublicAccessBlocked bool            `json:"PublicAccessBlocked" yaml:"PublicAccessBlocked"`
	Retention           string          `json:"Retention" yaml:"Retention"`
	AutoPurgeObjects    bool            `json:"AutoPurgeObjects" yaml:"AutoPurgeObjects"`
	LifecycleRules      []LifecycleRule `json:"LifecycleRules,omitempty" yaml:"LifecycleRules,omitempty"`
}

// LifecycleRule expires store contents after a fixed number of days.
type LifecycleRule struct {
	ID               string `json:"Id" yaml:"Id"`
	Status           string `json:"Status" yaml:"Status"`
	ExpirationInDays int    `json:"ExpirationInDays" yaml:"ExpirationInDays"`
}

// IPSetProps declares a named address set referenced by a firewall rule.
// An empty address list is legal and matches nothing.
type IPSetProps struct {
	Name      string   `json:"Name" yaml:"Name"`
	Addresses []string `json:"Addresses" yaml:"Addresses"`
}

// WebACLProps declares a firewall policy for the edge distribution.
type WebACLProps struct {
	Name          string    `json:"Name" yaml:"Name"`
	Scope         string    `json:"Scope" yaml:"Scope"`
	DefaultAction string    `json:"DefaultAction" yaml:"DefaultAction"`
	Rules         []ACLRule `json:"Rules" yaml:"Rules"`
}

// ACLRule is one evaluated firewall rule.
type ACLRule struct {
	Name       string     `json:"Name" yaml:"Name"`
	Priority   int        `json:"Priority" yaml:"Priority"`
	Action     string     `json:"Action" yaml:"Action"`
	Statement  Statement  `json:"Statement" yaml:"Statement"`
	Visibility Visibility `json:"Visibility" yaml:"Visibility"`
}

// Visibility controls sampling and metric emission for a rule.
type Visibility struct {
	SampledRequestsEnabled bool   `json:"SampledRequestsEnabled" yaml:"SampledRequestsEnabled"`
	MetricsEnabled         bool   `json:"MetricsEnabled" yaml:"MetricsEnabled"`
	MetricName             string `json:"MetricName" yaml:"MetricName"`
}

// Statement is a tagged union of match statements; exactly one member is set.
type Statement struct {
	RateLimit    *RateLimitStatement    `json:"RateLimit,omitempty" yaml:"RateLimit,omitempty"`
	ManagedGroup *ManagedGroupStatement `json:"ManagedGroup,omitempty" yaml:"ManagedGroup,omitempty"`
	GeoMatch     *GeoMatchStatement     `json:"GeoMatch,omitempty" yaml:"GeoMatch,omitempty"`
	IPSetRef     *IPSetRefStatement     `json:"IPSetRef,omitempty" yaml:"IPSetRef,omitempty"`
}

// RateLimitStatement throttles by request rate per source address.
type RateLimitStatement struct {
	Limit       int    `json:"Limit" yaml:"Limit"`
	AggregateOn string `json:"AggregateOn" yaml:"AggregateOn"`
}

// ManagedGroupStatement references a vendor-maintained rule group by name.
type ManagedGroupStatement struct {
	GroupName string `json:"GroupName" yaml:"GroupName"`
}

// GeoMatchStatement matches requests by origin country.
type GeoMatchStatement struct {
	CountryCodes []string `json:"CountryCodes" yaml:"CountryCodes"`
}

// IPSetRefStatement matches requests against a declared address set.
type IPSetRefStatement struct {
	SetRef string `json:"SetRef" yaml:"SetRef"`
}

// AccessControlProps declares the scoped origin access mechanism.
type AccessControlProps struct {
	Name            string `json:"Name" yaml:"Name"`
	OriginType      string `json:"OriginType" yaml:"OriginType"`
	SigningBehavior string `json:"SigningBehavior" yaml:"SigningBehavior"`
}

// DistributionProps declares the edge distribution.
type DistributionProps struct {
	Comment           string          `json:"Comment,omitempty" yaml:"Comment,omitempty"`
	Aliases           []string        `json:"Aliases" yaml:"Aliases"`
	CertificateRef    string          `json:"CertificateRef" yaml:"CertificateRef"`
	DefaultRootObject string          `json:"DefaultRootObject" yaml:"DefaultRootObject"`
	Origin            Origin          `json:"Origin" yaml:"Origin"`
	DefaultBehavior   Behavior        `json:"DefaultBehavior" yaml:"DefaultBehavior"`
	PathBehaviors     []PathBehavior  `json:"PathBehaviors,omitempty" yaml:"PathBehaviors,omitempty"`
	ErrorResponses    []ErrorResponse `json:"ErrorResponses" yaml:"ErrorResponses"`
	PriceTier         string          `json:"PriceTier" yaml:"PriceTier"`
	WebACLRef         string          `json:"WebAclRef,omitempty" yaml:"WebAclRef,omitempty"`
	Logging           *Logging        `json:"Logging,omitempty" yaml:"Logging,omitempty"`
}

// Origin binds the distribution to the primary content store.
type Origin struct {
	BucketRef        string `json:"BucketRef" yaml:"BucketRef"`
	AccessControlRef string `json:"AccessControlRef" yaml:"AccessControlRef"`
}

// Behavior describes request handling for a path scope.
type Behavior struct {
	ViewerProtocol string   `json:"ViewerProtocol" yaml:"ViewerProtocol"`
	AllowedMethods []string `json:"AllowedMethods" yaml:"AllowedMethods"`
	CachingEnabled bool     `json:"CachingEnabled" yaml:"CachingEnabled"`
}

// PathBehavior is a Behavior scoped to a path pattern.
type PathBehavior struct {
	PathPattern string `json:"PathPattern" yaml:"PathPattern"`
	Behavior    `json:",inline" yaml:",inline"`
}

// ErrorResponse substitutes an error status with a document.
type ErrorResponse struct {
	ErrorCode        int    `json:"ErrorCode" yaml:"ErrorCode"`
	ResponseCode     int    `json:"ResponseCode" yaml:"ResponseCode"`
	ResponsePagePath string `json:"ResponsePagePath" yaml:"ResponsePagePath"`
	CacheTTLSeconds  int    `json:"CacheTtlSeconds" yaml:"CacheTtlSeconds"`
}

// Logging routes access logs to a dedicated store.
type Logging struct {
	BucketRef string `json:"BucketRef" yaml:"BucketRef"`
}

// AccessPolicyProps grants the distribution's service identity read access
// to the content store, conditioned on the specific distribution reference
// so a grant cannot be reused across distributions.
type AccessPolicyProps struct {
	BucketRef                string   `json:"BucketRef" yaml:"BucketRef"`
	GranteeService           string   `json:"GranteeService" yaml:"GranteeService"`
	Actions                  []string `json:"Actions" yaml:"Actions"`
	ConditionDistributionRef string   `json:"ConditionDistributionRef" yaml:"ConditionDistributionRef"`
}

// RecordSetProps declares one DNS alias record.
type RecordSetProps struct {
	ZoneID         string `json:"ZoneId" yaml:"ZoneId"`
	Name           string `json:"Name" yaml:"Name"`
	Type           string `json:"Type" yaml:"Type"`
	AliasTargetRef string `json:"AliasTargetRef" yaml:"AliasTargetRef"`
}

// ContentSyncProps declares a one-shot copy of a local tree into the store.
type ContentSyncProps struct {
	SourcePath      string   `json:"SourcePath" yaml:"SourcePath"`
	DestinationRef  string   `json:"DestinationRef" yaml:"DestinationRef"`
	DistributionRef string   `json:"DistributionRef" yaml:"DistributionRef"`
	InvalidatePaths []string `json:"InvalidatePaths" yaml:"InvalidatePaths"`
	Prune           bool     `json:"Prune" yaml:"Prune"`
	RetainOnDelete  bool     `json:"RetainOnDelete" yaml:"RetainOnDelete"`
}

// ParameterProps declares one published configuration entry.
type ParameterProps struct {
	Name  string `json:"Name" yaml:"Name"`
	Value string `json:"Value" yaml:"Value"`
	Type  string `json:"Type" yaml:"Type"`
}
