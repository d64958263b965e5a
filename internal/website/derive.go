// Where: internal/website/derive.go
// What: Pure defaulting and validation of a website spec.
// Why: Every downstream step reads only fully-resolved fields; default
//      logic stays testable in isolation.
package website

import (
	"errors"
	"fmt"
	"strings"

	"github.com/websmith/websmith/internal/meta"
)

// ErrInvalidSpec indicates the spec failed validation before any
// declaration was made.
var ErrInvalidSpec = errors.New("invalid website spec")

// ResolvedSpec is a Spec with every default applied and every field
// validated. Downstream policy steps never re-derive anything.
type ResolvedSpec struct {
	DomainName      string
	ApexDomain      string
	HostedZoneID    string // empty means: look the zone up by apex
	BucketName      string // empty means: engine-generated name
	Comment         string
	IndexDocument   string
	ErrorDocument   string
	EnableWaf       bool
	EnableLogging   bool
	Rules           []ResolvedRule // empty only when EnableWaf is false
	CodeSourcePath  string
	RetentionPolicy string
	AutoPurge       bool
	DomainAliases   []string
	LogBucketName   string
}

// ResolvedRule is a WafRule with defaults applied and the action and type
// literals already validated.
type ResolvedRule struct {
	Name          string
	Priority      int
	Action        string
	RuleType      string
	Limit         int
	CountryCodes  []string
	Addresses     []string
	RuleGroupName string
}

// Derive resolves a Spec into a ResolvedSpec. It fails fast on a missing
// domain name, on unknown action or rule-type literals (fail closed rather
// than defaulting to allow), and on duplicate rule names or priorities.
func Derive(spec Spec) (ResolvedSpec, error) {
	domain := strings.TrimSpace(spec.DomainName)
	if domain == "" {
		return ResolvedSpec{}, fmt.Errorf("%w: domainName is required", ErrInvalidSpec)
	}

	apex, err := ApexDomain(domain)
	if err != nil {
		return ResolvedSpec{}, err
	}

	retention := spec.RetentionPolicy
	if retention == "" {
		retention = "destroy"
	}
	if retention != "retain" && retention != "destroy" {
		return ResolvedSpec{}, fmt.Errorf("%w: retentionPolicy %q (want retain or destroy)", ErrInvalidSpec, retention)
	}

	index := spec.IndexDocument
	if index == "" {
		index = meta.DefaultIndexDocument
	}
	errorDoc := spec.ErrorDocument
	if errorDoc == "" {
		errorDoc = meta.DefaultIndexDocument
	}

	enableWaf := true
	if spec.EnableWaf != nil {
		enableWaf = *spec.EnableWaf
	}

	resolved := ResolvedSpec{
		DomainName:      domain,
		ApexDomain:      apex,
		HostedZoneID:    strings.TrimSpace(spec.HostedZoneID),
		BucketName:      strings.TrimSpace(spec.BucketName),
		Comment:         spec.Comment,
		IndexDocument:   index,
		ErrorDocument:   errorDoc,
		EnableWaf:       enableWaf,
		EnableLogging:   spec.EnableLogging,
		CodeSourcePath:  strings.TrimSpace(spec.CodeSourcePath),
		RetentionPolicy: retention,
		AutoPurge:       retention == "destroy",
		DomainAliases:   append([]string(nil), spec.DomainAliases...),
		LogBucketName:   strings.TrimSpace(spec.LogBucketName),
	}

	if enableWaf {
		rules := spec.WafRules
		if len(rules) == 0 {
			rules = defaultWafRules()
		}
		resolvedRules, err := deriveRules(rules)
		if err != nil {
			return ResolvedSpec{}, err
		}
		resolved.Rules = resolvedRules
	}

	return resolved, nil
}

// ApexDomain derives the root registrable domain as the last two
// dot-separated labels: "www.myadvancedsite.example.com" -> "example.com".
func ApexDomain(domain string) (string, error) {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return "", fmt.Errorf("%w: domainName %q has fewer than two labels", ErrInvalidSpec, domain)
	}
	for _, label := range labels {
		if label == "" {
			return "", fmt.Errorf("%w: domainName %q has an empty label", ErrInvalidSpec, domain)
		}
	}
	return strings.Join(labels[len(labels)-2:], "."), nil
}

func deriveRules(rules []WafRule) ([]ResolvedRule, error) {
	seenNames := map[string]bool{}
	seenPriorities := map[int]bool{}
	out := make([]ResolvedRule, 0, len(rules))

	for _, rule := range rules {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: waf rule without a name", ErrInvalidSpec)
		}
		if seenNames[name] {
			return nil, fmt.Errorf("%w: duplicate waf rule name %q", ErrInvalidSpec, name)
		}
		seenNames[name] = true
		if seenPriorities[rule.Priority] {
			return nil, fmt.Errorf("%w: duplicate waf rule priority %d (rule %q)", ErrInvalidSpec, rule.Priority, name)
		}
		seenPriorities[rule.Priority] = true

		switch rule.Action {
		case ActionAllow, ActionBlock, ActionCount:
		default:
			return nil, fmt.Errorf("%w: rule %q has unknown action %q", ErrInvalidSpec, name, rule.Action)
		}

		resolved := ResolvedRule{
			Name:     name,
			Priority: rule.Priority,
			Action:   rule.Action,
			RuleType: rule.RuleType,
		}

		switch rule.RuleType {
		case RuleTypeRateLimit:
			resolved.Limit = meta.DefaultRateLimit
			if rule.Limit != nil {
				resolved.Limit = *rule.Limit
			}
		case RuleTypeGeoBlock:
			resolved.CountryCodes = append([]string(nil), rule.CountryCodes...)
			if len(resolved.CountryCodes) == 0 {
				resolved.CountryCodes = []string{"CN", "RU"}
			}
		case RuleTypeIPSet:
			// An empty address list is legal; the set matches nothing.
			resolved.Addresses = append([]string(nil), rule.Addresses...)
			if resolved.Addresses == nil {
				resolved.Addresses = []string{}
			}
		case RuleTypeManagedRule:
			resolved.RuleGroupName = strings.TrimSpace(rule.RuleGroupName)
			if resolved.RuleGroupName == "" {
				resolved.RuleGroupName = meta.DefaultManagedGroup
			}
		default:
			return nil, fmt.Errorf("%w: rule %q has unknown ruleType %q", ErrInvalidSpec, name, rule.RuleType)
		}

		out = append(out, resolved)
	}
	return out, nil
}

// defaultWafRules is the built-in rule set used when the spec carries no
// rules: three managed groups in block mode plus a rate limit, with
// ascending priorities 1, 2, 3, 10.
func defaultWafRules() []WafRule {
	return []WafRule{
		{Name: "managed-common", Priority: 1, Action: ActionBlock, RuleType: RuleTypeManagedRule, RuleGroupName: "CommonRuleSet"},
		{Name: "managed-known-bad-inputs", Priority: 2, Action: ActionBlock, RuleType: RuleTypeManagedRule, RuleGroupName: "KnownBadInputsRuleSet"},
		{Name: "managed-platform", Priority: 3, Action: ActionBlock, RuleType: RuleTypeManagedRule, RuleGroupName: "PlatformRuleSet"},
		{Name: "rate-limit", Priority: 10, Action: ActionBlock, RuleType: RuleTypeRateLimit},
	}
}
