package valueobject

import "fmt"

// ClaimStatus is the processing status recorded on a claim.
type ClaimStatus struct {
	value string
}

var (
	ClaimStatusPending  = ClaimStatus{value: "Pending"}
	ClaimStatusApproved = ClaimStatus{value: "Approved"}
	ClaimStatusRejected = ClaimStatus{value: "Rejected"}
)

// ClaimStatusFromString reconstructs a ClaimStatus from its string representation.
func ClaimStatusFromString(s string) (ClaimStatus, error) {
	switch s {
	case "Pending":
		return ClaimStatusPending, nil
	case "Approved":
		return ClaimStatusApproved, nil
	case "Rejected":
		return ClaimStatusRejected, nil
	default:
		return ClaimStatus{}, fmt.Errorf("invalid claim status: %s", s)
	}
}

// String returns the string representation.
func (s ClaimStatus) String() string {
	return s.value
}

// IsZero returns true if the status has not been set.
func (s ClaimStatus) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another ClaimStatus.
func (s ClaimStatus) Equal(other ClaimStatus) bool {
	return s.value == other.value
}
