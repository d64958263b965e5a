// Where: internal/website/outputs.go
// What: Output projection over a resolved topology.
// Why: Expose the handful of values callers actually consume; pure read.
package website

// Outputs is the deterministic set of derived values exposed after
// resolution. Optional fields stay empty when their resource was never
// declared.
type Outputs struct {
	SiteURL         string `json:"siteUrl" yaml:"siteUrl"`
	BucketName      string `json:"bucketName" yaml:"bucketName"`
	DistributionRef string `json:"distributionRef" yaml:"distributionRef"`
	CertificateRef  string `json:"certificateRef" yaml:"certificateRef"`
	WebACLRef       string `json:"webAclRef,omitempty" yaml:"webAclRef,omitempty"`
	LogBucketName   string `json:"logBucketName,omitempty" yaml:"logBucketName,omitempty"`
}

// ProjectOutputs reads already-resolved identifiers; it never mutates the
// graph and never fails once a topology was built successfully.
func (t *Topology) ProjectOutputs() (Outputs, error) {
	distRef, err := t.Distribution.Ref()
	if err != nil {
		return Outputs{}, err
	}
	certRef, err := t.Certificate.Ref()
	if err != nil {
		return Outputs{}, err
	}

	bucketName := t.Spec.BucketName
	if bucketName == "" {
		generated, err := t.Bucket.Attr("name")
		if err != nil {
			return Outputs{}, err
		}
		bucketName = generated
	}

	out := Outputs{
		SiteURL:         "https://" + t.Spec.DomainName,
		BucketName:      bucketName,
		DistributionRef: distRef,
		CertificateRef:  certRef,
	}

	if t.WebACL != nil {
		aclRef, err := t.WebACL.Ref()
		if err != nil {
			return Outputs{}, err
		}
		out.WebACLRef = aclRef
	}
	if t.LogBucket != nil {
		name := t.Spec.LogBucketName
		if name == "" {
			generated, err := t.LogBucket.Attr("name")
			if err != nil {
				return Outputs{}, err
			}
			name = generated
		}
		out.LogBucketName = name
	}

	return out, nil
}
