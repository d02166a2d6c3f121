package eligibility

import "strings"

// Tier is the severity of the composed eligibility message.
type Tier string

const (
	TierSuccess Tier = "success"
	TierWarning Tier = "warning"
	TierError   Tier = "error"
)

const successMessage = "Congratulations! You meet our initial eligibility criteria for clinical trial participation. " +
	"Our clinical research team will review your information and contact you within 5-7 business days " +
	"to discuss specific trials that may be suitable for you."

const areaFollowUp = ". We are continuously expanding our trial locations. " +
	"Please check back in the future or contact us if you're willing to travel to a nearby location."

const healthFollowUp = ". This doesn't disqualify you from all trials. " +
	"Our medical team will review your case individually and may contact you " +
	"for trials with different eligibility criteria."

// ComposeMessage maps an evaluation result to a severity tier and a
// user-facing message.
//
// A single area-not-served reason and a single health-review reason each
// get a softer "warning" follow-up; every other nonempty reason list is a
// hard "error". Classification is by reason kind: the two warning cases
// are the only members of their kinds, so this matches classifying on the
// reason wording without depending on it.
func ComposeMessage(result Result) (Tier, string) {
	if result.Eligible {
		return TierSuccess, successMessage
	}

	if len(result.Reasons) == 1 {
		switch result.Reasons[0].Kind {
		case KindAreaNotServed:
			return TierWarning, result.Reasons[0].Text + areaFollowUp
		case KindHealthReview:
			return TierWarning, result.Reasons[0].Text + healthFollowUp
		}
	}

	reasonText := strings.Join(result.ReasonTexts(), "; ")
	return TierError, "We're unable to proceed with your application at this time. " + reasonText + ". " +
		"Please contact our clinical trials information center at 1-800-TRIALS-1 " +
		"if you have questions about eligibility requirements."
}
