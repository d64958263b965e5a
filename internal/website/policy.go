// Where: internal/website/policy.go
// What: Website topology assembly in dependency order.
// Why: One resolved spec expands into a complete, internally consistent
//      resource graph.
package website

import (
	"context"
	"fmt"

	"github.com/websmith/websmith/internal/graph"
	"github.com/websmith/websmith/internal/manifest"
	"github.com/websmith/websmith/internal/meta"
	"github.com/websmith/websmith/internal/ports"
)

// Topology holds the handles produced by one policy run. The graph owns
// every declared resource; the topology only keeps references.
type Topology struct {
	Spec         ResolvedSpec
	ZoneID       string
	Certificate  *graph.Handle
	Bucket       *graph.Handle
	LogBucket    *graph.Handle
	WebACL       *graph.Handle
	Distribution *graph.Handle
	Records      []*graph.Handle
	Sync         *graph.Handle
}

// Local ids used within the website graph.
const (
	idCertificate   = "certificate"
	idBucket        = "site-bucket"
	idLogBucket     = "log-bucket"
	idAccessControl = "origin-access"
	idDistribution  = "distribution"
	idBucketPolicy  = "bucket-access"
	idRecordA       = "alias-record-a"
	idRecordAAAA    = "alias-record-aaaa"
	idContentSync   = "content-sync"
)

// BuildTopology expands a resolved spec into the graph. The zone lookup is
// the only collaborator call; its failure aborts the run before any
// declaration and is propagated unchanged.
func BuildTopology(ctx context.Context, b *graph.Builder, spec ResolvedSpec, zones ports.ZoneLookup) (*Topology, error) {
	topo := &Topology{Spec: spec}

	// 1. Resolve the DNS zone.
	zoneID := spec.HostedZoneID
	if zoneID == "" {
		if zones == nil {
			return nil, fmt.Errorf("zone lookup not configured and no hostedZoneId given")
		}
		looked, err := zones.LookupZone(ctx, spec.ApexDomain)
		if err != nil {
			return nil, err
		}
		zoneID = looked
	}
	topo.ZoneID = zoneID

	// 2. Certificate validated through the resolved zone.
	cert, err := b.Declare(manifest.KindCertificate, idCertificate, manifest.CertificateProps{
		DomainName:              spec.DomainName,
		SubjectAlternativeNames: spec.DomainAliases,
		ValidationZoneID:        zoneID,
		ValidationMethod:        "DNS",
	})
	if err != nil {
		return nil, err
	}
	topo.Certificate = cert

	// 3. Primary content store: private, versioned, encrypted.
	bucket, err := b.Declare(manifest.KindBucket, idBucket, manifest.BucketProps{
		BucketName:          spec.BucketName,
		Versioned:           true,
		Encryption:          "AES256",
		PublicAccessBlocked: true,
		Retention:           spec.RetentionPolicy,
		AutoPurgeObjects:    spec.AutoPurge,
	})
	if err != nil {
		return nil, err
	}
	topo.Bucket = bucket

	// 4. Access log store with a fixed expiry window.
	if spec.EnableLogging {
		logBucket, err := b.Declare(manifest.KindBucket, idLogBucket, manifest.BucketProps{
			BucketName:          spec.LogBucketName,
			Versioned:           false,
			Encryption:          "AES256",
			PublicAccessBlocked: true,
			Retention:           spec.RetentionPolicy,
			AutoPurgeObjects:    spec.AutoPurge,
			LifecycleRules: []manifest.LifecycleRule{
				{ID: "expire-access-logs", Status: "Enabled", ExpirationInDays: meta.LogExpiryDays},
			},
		})
		if err != nil {
			return nil, err
		}
		topo.LogBucket = logBucket
	}

	// 5. Firewall policy, unless explicitly disabled.
	if spec.EnableWaf {
		acl, err := translateFirewall(b, spec.DomainName+"-acl", spec.Rules)
		if err != nil {
			return nil, err
		}
		topo.WebACL = acl
	}

	// 6. Edge distribution fronting the store through scoped access control.
	access, err := b.Declare(manifest.KindOriginAccessControl, idAccessControl, manifest.AccessControlProps{
		Name:            spec.DomainName + "-origin-access",
		OriginType:      "content-store",
		SigningBehavior: "always",
	})
	if err != nil {
		return nil, err
	}

	distProps := manifest.DistributionProps{
		Comment:           spec.Comment,
		Aliases:           append([]string{spec.DomainName}, spec.DomainAliases...),
		CertificateRef:    cert.MustRef(),
		DefaultRootObject: spec.IndexDocument,
		Origin: manifest.Origin{
			BucketRef:        bucket.MustRef(),
			AccessControlRef: access.MustRef(),
		},
		DefaultBehavior: manifest.Behavior{
			ViewerProtocol: "redirect-to-https",
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			CachingEnabled: true,
		},
		PathBehaviors: []manifest.PathBehavior{
			{
				PathPattern: "/api/*",
				Behavior: manifest.Behavior{
					ViewerProtocol: "redirect-to-https",
					AllowedMethods: []string{"GET", "HEAD", "OPTIONS", "PUT", "POST", "PATCH", "DELETE"},
					CachingEnabled: false,
				},
			},
		},
		// Client-side routing fallback: error statuses serve the index
		// document with a short substitution lifetime.
		ErrorResponses: []manifest.ErrorResponse{
			{ErrorCode: 403, ResponseCode: 200, ResponsePagePath: "/" + spec.IndexDocument, CacheTTLSeconds: meta.ErrorCacheTTLSeconds},
			{ErrorCode: 404, ResponseCode: 200, ResponsePagePath: "/" + spec.IndexDocument, CacheTTLSeconds: meta.ErrorCacheTTLSeconds},
		},
		PriceTier: "lowest",
	}
	distDeps := []string{idCertificate, idBucket, idAccessControl}
	if topo.WebACL != nil {
		distProps.WebACLRef = topo.WebACL.MustRef()
		distDeps = append(distDeps, topo.WebACL.ID())
	}
	if topo.LogBucket != nil {
		distProps.Logging = &manifest.Logging{BucketRef: topo.LogBucket.MustRef()}
		distDeps = append(distDeps, idLogBucket)
	}

	dist, err := b.Declare(manifest.KindDistribution, idDistribution, distProps, distDeps...)
	if err != nil {
		return nil, err
	}
	topo.Distribution = dist

	// 7. Scoped read grant: tied to this distribution's identifier so the
	// grant cannot be reused by another distribution.
	if _, err := b.Declare(manifest.KindBucketPolicy, idBucketPolicy, manifest.AccessPolicyProps{
		BucketRef:                bucket.MustRef(),
		GranteeService:           "edge-distribution",
		Actions:                  []string{"read"},
		ConditionDistributionRef: dist.MustRef(),
	}, idBucket, idDistribution); err != nil {
		return nil, err
	}

	// 8. Alias records for both address families.
	for _, record := range []struct {
		id         string
		recordType string
	}{
		{idRecordA, "A"},
		{idRecordAAAA, "AAAA"},
	} {
		handle, err := b.Declare(manifest.KindRecordSet, record.id, manifest.RecordSetProps{
			ZoneID:         zoneID,
			Name:           spec.DomainName,
			Type:           record.recordType,
			AliasTargetRef: dist.MustAttr("domainName"),
		}, idDistribution)
		if err != nil {
			return nil, err
		}
		topo.Records = append(topo.Records, handle)
	}

	// 9. One-shot content sync with full cache invalidation.
	if spec.CodeSourcePath != "" {
		sync, err := b.Declare(manifest.KindContentSync, idContentSync, manifest.ContentSyncProps{
			SourcePath:      spec.CodeSourcePath,
			DestinationRef:  bucket.MustRef(),
			DistributionRef: dist.MustRef(),
			InvalidatePaths: []string{"/*"},
			Prune:           true,
			RetainOnDelete:  false,
		}, idBucket, idDistribution)
		if err != nil {
			return nil, err
		}
		topo.Sync = sync
	}

	return topo, nil
}
