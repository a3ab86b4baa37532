package idgen

import (
	"strings"

	"github.com/google/uuid"
)

const suffixLength = 8

const (
	PrefixSuperAdmin         = "sa"
	PrefixOrganization       = "org"
	PrefixOrgAdmin           = "oa"
	PrefixOrgUser            = "ou"
	PrefixIndividual         = "ind"
	PrefixProductCategory    = "pc"
	PrefixProduct            = "p"
	PrefixMeasurementType    = "mt"
	PrefixMeasurementSection = "ms"
	PrefixMeasurementField   = "mf"
	PrefixMeasurement        = "m"
	PrefixMeasurementValue   = "mv"
	PrefixOrder              = "ord"
)

// New returns prefix-xxxxxxxx where the suffix is the first 8 hex characters
// of a random UUIDv4. Collisions are not retried.
func New(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + hex[:suffixLength]
}
