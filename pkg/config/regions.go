package config

// CertificateRegion is where ACM certificates for CloudFront distributions
// must live.
const CertificateRegion = "us-east-1"

// knownRegions is the set of commercial AWS region codes this tool will
// deploy to. Gov and China partitions need separate credentials and
// endpoints and are intentionally absent.
var knownRegions = map[string]bool{
	"us-east-1":      true,
	"us-east-2":      true,
	"us-west-1":      true,
	"us-west-2":      true,
	"ca-central-1":   true,
	"sa-east-1":      true,
	"eu-west-1":      true,
	"eu-west-2":      true,
	"eu-west-3":      true,
	"eu-central-1":   true,
	"eu-north-1":     true,
	"eu-south-1":     true,
	"ap-south-1":     true,
	"ap-northeast-1": true,
	"ap-northeast-2": true,
	"ap-northeast-3": true,
	"ap-southeast-1": true,
	"ap-southeast-2": true,
}

// IsKnownRegion reports whether region is a supported AWS region code.
func IsKnownRegion(region string) bool {
	return knownRegions[region]
}
