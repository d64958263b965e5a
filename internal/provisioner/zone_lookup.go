// Where: internal/provisioner/zone_lookup.go
// What: Hosted zone lookup adapter.
// Why: The topology policy resolves apex domains through this port.
package provisioner

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/websmith/websmith/internal/ports"
)

// Route53API is the slice of the DNS control plane the lookup needs.
type Route53API interface {
	ListZonesByName(ctx context.Context, name string) ([]HostedZone, error)
}

// HostedZone is one zone returned by the control plane.
type HostedZone struct {
	ID   string
	Name string
}

// ZoneLookup resolves apex domains against the DNS control plane.
// Lookup failure is terminal: the caller propagates it unchanged.
type ZoneLookup struct {
	API Route53API
}

// NewZoneLookup wires a lookup over the given API.
func NewZoneLookup(api Route53API) *ZoneLookup {
	return &ZoneLookup{API: api}
}

// LookupZone returns the zone id whose name matches the apex domain.
func (z *ZoneLookup) LookupZone(ctx context.Context, apexDomain string) (string, error) {
	if z.API == nil {
		return "", fmt.Errorf("zone lookup api not configured")
	}
	want := canonicalZoneName(apexDomain)
	zones, err := z.API.ListZonesByName(ctx, want)
	if err != nil {
		return "", err
	}
	for _, zone := range zones {
		if canonicalZoneName(zone.Name) == want {
			return strings.TrimPrefix(zone.ID, "/hostedzone/"), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ports.ErrZoneNotFound, apexDomain)
}

// Zone names come back from the control plane with a trailing dot.
func canonicalZoneName(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".") + "."
}

type awsRoute53Client struct {
	client *route53.Client
}

func (c awsRoute53Client) ListZonesByName(ctx context.Context, name string) ([]HostedZone, error) {
	if c.client == nil {
		return nil, fmt.Errorf("route53 client is nil")
	}
	resp, err := c.client.ListHostedZonesByName(ctx, &route53.ListHostedZonesByNameInput{
		DNSName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	out := make([]HostedZone, 0, len(resp.HostedZones))
	for _, zone := range resp.HostedZones {
		if zone.Id == nil || zone.Name == nil {
			continue
		}
		out = append(out, HostedZone{ID: *zone.Id, Name: *zone.Name})
	}
	return out, nil
}
