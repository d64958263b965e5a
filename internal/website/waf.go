// Where: internal/website/waf.go
// What: Firewall rule translation into policy-engine statements.
// Why: Pure mapping; the only side effect is declaring address-set
//      sub-resources for ip_set rules.
package website

import (
	"fmt"

	"github.com/websmith/websmith/internal/graph"
	"github.com/websmith/websmith/internal/manifest"
)

// translateFirewall declares one ip-set per ip_set rule and then the web
// ACL itself. Rules arrive already validated and defaulted by Derive, so
// the statement mapping here is total over the four rule types. Sampling
// and metrics are always on, with the rule's name as its metric name.
func translateFirewall(b *graph.Builder, name string, rules []ResolvedRule) (*graph.Handle, error) {
	aclRules := make([]manifest.ACLRule, 0, len(rules))
	var setIDs []string

	for _, rule := range rules {
		statement, setID, err := translateStatement(b, rule)
		if err != nil {
			return nil, err
		}
		if setID != "" {
			setIDs = append(setIDs, setID)
		}
		aclRules = append(aclRules, manifest.ACLRule{
			Name:      rule.Name,
			Priority:  rule.Priority,
			Action:    rule.Action,
			Statement: statement,
			Visibility: manifest.Visibility{
				SampledRequestsEnabled: true,
				MetricsEnabled:         true,
				MetricName:             rule.Name,
			},
		})
	}

	return b.Declare(manifest.KindWebACL, "web-acl", manifest.WebACLProps{
		Name:          name,
		Scope:         "EDGE",
		DefaultAction: "allow",
		Rules:         aclRules,
	}, setIDs...)
}

func translateStatement(b *graph.Builder, rule ResolvedRule) (manifest.Statement, string, error) {
	switch rule.RuleType {
	case RuleTypeRateLimit:
		return manifest.Statement{
			RateLimit: &manifest.RateLimitStatement{
				Limit:       rule.Limit,
				AggregateOn: "source-address",
			},
		}, "", nil
	case RuleTypeManagedRule:
		return manifest.Statement{
			ManagedGroup: &manifest.ManagedGroupStatement{GroupName: rule.RuleGroupName},
		}, "", nil
	case RuleTypeGeoBlock:
		return manifest.Statement{
			GeoMatch: &manifest.GeoMatchStatement{CountryCodes: rule.CountryCodes},
		}, "", nil
	case RuleTypeIPSet:
		setID := "ip-set-" + rule.Name
		handle, err := b.Declare(manifest.KindIPSet, setID, manifest.IPSetProps{
			Name:      rule.Name,
			Addresses: rule.Addresses,
		})
		if err != nil {
			return manifest.Statement{}, "", err
		}
		return manifest.Statement{
			IPSetRef: &manifest.IPSetRefStatement{SetRef: handle.MustRef()},
		}, setID, nil
	default:
		// Unreachable after Derive; kept as a defect signal rather than a
		// silent fallback to a permissive mapping.
		return manifest.Statement{}, "", fmt.Errorf("%w: ruleType %q", ErrInvalidSpec, rule.RuleType)
	}
}
