package edt

// Test bridge: exposes unexported helpers to the edt_test package only.
var (
	ExportedBandBounds         = bandBounds
	ExportedMaxSquaredDistance = maxSquaredDistance
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicInfinityInvalid_TestOnly = panicInfinityInvalid
	PanicPolicyInvalid_TestOnly   = panicPolicyInvalid
)
