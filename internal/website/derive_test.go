// Where: internal/website/derive_test.go
// What: Tests for spec defaulting and validation.
// Why: Defaults and fail-closed rejection are the contract downstream
//      policy code relies on.
package website

import (
	"errors"
	"reflect"
	"testing"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestDeriveAppliesDefaults(t *testing.T) {
	resolved, err := Derive(Spec{DomainName: "www.myadvancedsite.example.com"})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	if resolved.ApexDomain != "example.com" {
		t.Errorf("apex = %q", resolved.ApexDomain)
	}
	if resolved.IndexDocument != "index.html" || resolved.ErrorDocument != "index.html" {
		t.Errorf("documents = %q / %q", resolved.IndexDocument, resolved.ErrorDocument)
	}
	if resolved.RetentionPolicy != "destroy" || !resolved.AutoPurge {
		t.Errorf("retention = %q autoPurge = %v", resolved.RetentionPolicy, resolved.AutoPurge)
	}
	if !resolved.EnableWaf {
		t.Error("waf should default to enabled")
	}
}

func TestDeriveRequiresDomain(t *testing.T) {
	_, err := Derive(Spec{})
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestApexDomain(t *testing.T) {
	cases := []struct {
		domain string
		apex   string
		ok     bool
	}{
		{"www.myadvancedsite.example.com", "example.com", true},
		{"example.com", "example.com", true},
		{"a.b.c.d.example.net", "example.net", true},
		{"localhost", "", false},
		{"bad..example.com", "", false},
	}
	for _, tc := range cases {
		apex, err := ApexDomain(tc.domain)
		if tc.ok != (err == nil) {
			t.Errorf("%s: err = %v", tc.domain, err)
			continue
		}
		if tc.ok && apex != tc.apex {
			t.Errorf("%s: apex = %q, want %q", tc.domain, apex, tc.apex)
		}
	}
}

func TestDeriveRetainDisablesAutoPurge(t *testing.T) {
	resolved, err := Derive(Spec{DomainName: "example.com", RetentionPolicy: "retain"})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if resolved.AutoPurge {
		t.Error("retain must not auto purge")
	}
}

func TestDeriveDefaultRuleSet(t *testing.T) {
	resolved, err := Derive(Spec{DomainName: "example.com"})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	priorities := make([]int, 0, len(resolved.Rules))
	for _, rule := range resolved.Rules {
		priorities = append(priorities, rule.Priority)
		if rule.Action != ActionBlock {
			t.Errorf("rule %s action = %q", rule.Name, rule.Action)
		}
	}
	if !reflect.DeepEqual(priorities, []int{1, 2, 3, 10}) {
		t.Errorf("priorities = %v", priorities)
	}

	last := resolved.Rules[len(resolved.Rules)-1]
	if last.RuleType != RuleTypeRateLimit || last.Limit != 2000 {
		t.Errorf("rate rule = %+v", last)
	}
	if resolved.Rules[0].RuleGroupName != "CommonRuleSet" {
		t.Errorf("first group = %q", resolved.Rules[0].RuleGroupName)
	}
}

func TestDeriveWafDisabledDropsRules(t *testing.T) {
	resolved, err := Derive(Spec{
		DomainName: "example.com",
		EnableWaf:  boolPtr(false),
		WafRules:   []WafRule{{Name: "ignored", Priority: 1, Action: "bogus", RuleType: "bogus"}},
	})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(resolved.Rules) != 0 {
		t.Errorf("rules = %v", resolved.Rules)
	}
}

func TestDeriveRuleDefaults(t *testing.T) {
	resolved, err := Derive(Spec{
		DomainName: "example.com",
		WafRules: []WafRule{
			{Name: "rate", Priority: 1, Action: ActionBlock, RuleType: RuleTypeRateLimit},
			{Name: "rate-custom", Priority: 2, Action: ActionBlock, RuleType: RuleTypeRateLimit, Limit: intPtr(500)},
			{Name: "geo", Priority: 3, Action: ActionBlock, RuleType: RuleTypeGeoBlock},
			{Name: "deny-list", Priority: 4, Action: ActionBlock, RuleType: RuleTypeIPSet},
			{Name: "managed", Priority: 5, Action: ActionCount, RuleType: RuleTypeManagedRule},
		},
	})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	rules := resolved.Rules
	if rules[0].Limit != 2000 {
		t.Errorf("default limit = %d", rules[0].Limit)
	}
	if rules[1].Limit != 500 {
		t.Errorf("explicit limit = %d", rules[1].Limit)
	}
	if !reflect.DeepEqual(rules[2].CountryCodes, []string{"CN", "RU"}) {
		t.Errorf("default countries = %v", rules[2].CountryCodes)
	}
	if rules[3].Addresses == nil || len(rules[3].Addresses) != 0 {
		t.Errorf("empty address set = %v", rules[3].Addresses)
	}
	if rules[4].RuleGroupName != "CommonRuleSet" {
		t.Errorf("default group = %q", rules[4].RuleGroupName)
	}
}

func TestDeriveRejectsUnknownLiterals(t *testing.T) {
	cases := []WafRule{
		{Name: "bad-action", Priority: 1, Action: "permit", RuleType: RuleTypeRateLimit},
		{Name: "bad-type", Priority: 1, Action: ActionBlock, RuleType: "sql_injection"},
	}
	for _, rule := range cases {
		_, err := Derive(Spec{DomainName: "example.com", WafRules: []WafRule{rule}})
		if !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("%s: expected ErrInvalidSpec, got %v", rule.Name, err)
		}
	}
}

func TestDeriveRejectsDuplicates(t *testing.T) {
	_, err := Derive(Spec{
		DomainName: "example.com",
		WafRules: []WafRule{
			{Name: "first", Priority: 1, Action: ActionBlock, RuleType: RuleTypeRateLimit},
			{Name: "first", Priority: 2, Action: ActionBlock, RuleType: RuleTypeGeoBlock},
		},
	})
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("duplicate name: expected ErrInvalidSpec, got %v", err)
	}

	_, err = Derive(Spec{
		DomainName: "example.com",
		WafRules: []WafRule{
			{Name: "first", Priority: 1, Action: ActionBlock, RuleType: RuleTypeRateLimit},
			{Name: "second", Priority: 1, Action: ActionBlock, RuleType: RuleTypeGeoBlock},
		},
	})
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("duplicate priority: expected ErrInvalidSpec, got %v", err)
	}
}
