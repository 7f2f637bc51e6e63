package core

// Version is the current version of gophercluster.
const Version = "v1.0.0"

// DefaultWorkers specifies the default number of parallel workers used by
// KMeansEngine's assignment step. 0 means use runtime.NumCPU().
var DefaultWorkers = 0

// DefaultADSignificance is the Anderson–Darling significance level (alpha)
// that the default critical value corresponds to; GMeansController uses that
// critical value when GMeansConfig.ADCriticalValue is 0. spec §9 leaves the
// critical value undocumented and recommends this as the canonical default.
const DefaultADSignificance = 0.0001

// DefaultMinClusterSize is the minimum cluster size below which
// GMeansController never attempts a split.
const DefaultMinClusterSize = 8

// DefaultMovesGoal is the default convergence threshold: a KMeans pass
// converges once fewer than this many rows change cluster in an iteration.
const DefaultMovesGoal = 0
