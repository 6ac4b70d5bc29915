package valueobjects

import "fmt"

// IssueType is the category a ticket is filed under. The catalogue is
// fixed; tickets cannot carry free-form types.
type IssueType string

const (
	IssueDeclaration       IssueType = "Declaration"
	IssueEstimation        IssueType = "Estimation"
	IssuePayment           IssueType = "Payment"
	IssueFilingUpdate      IssueType = "Filing Update"
	IssueRefundUpdate      IssueType = "Refund Update"
	IssueNotice148         IssueType = "Notice U/s 148"
	IssueNotice1336        IssueType = "Notice U/s 133(6)"
	IssueOtherNotices      IssueType = "Other Notices"
	IssueGSTFiling         IssueType = "GST Filing"
	IssueReferralBonus     IssueType = "Referral Bonus"
	IssueGSTRegistration   IssueType = "GST Registration"
	IssueFilingCopies      IssueType = "Filing Copies"
	IssueComputationCopies IssueType = "Computation Copies"
	IssueOthers            IssueType = "Others"
)

var validIssueTypes = map[IssueType]bool{
	IssueDeclaration:       true,
	IssueEstimation:        true,
	IssuePayment:           true,
	IssueFilingUpdate:      true,
	IssueRefundUpdate:      true,
	IssueNotice148:         true,
	IssueNotice1336:        true,
	IssueOtherNotices:      true,
	IssueGSTFiling:         true,
	IssueReferralBonus:     true,
	IssueGSTRegistration:   true,
	IssueFilingCopies:      true,
	IssueComputationCopies: true,
	IssueOthers:            true,
}

func (it IssueType) String() string {
	return string(it)
}

func (it IssueType) IsValid() bool {
	return validIssueTypes[it]
}

func NewIssueType(s string) (IssueType, error) {
	it := IssueType(s)
	if !it.IsValid() {
		return "", fmt.Errorf("invalid issue type: %s", s)
	}
	return it, nil
}

// AllIssueTypes returns the catalogue in presentation order.
func AllIssueTypes() []IssueType {
	return []IssueType{
		IssueDeclaration,
		IssueEstimation,
		IssuePayment,
		IssueFilingUpdate,
		IssueRefundUpdate,
		IssueNotice148,
		IssueNotice1336,
		IssueOtherNotices,
		IssueGSTFiling,
		IssueReferralBonus,
		IssueGSTRegistration,
		IssueFilingCopies,
		IssueComputationCopies,
		IssueOthers,
	}
}
