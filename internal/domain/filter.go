package domain

// VocabFilter contains filtering, sorting, and pagination parameters for
// ledger listings. Unsupported or out-of-range values are clamped to
// defaults by the storage layer rather than rejected.
type VocabFilter struct {
	Status    *VocabStatus
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
