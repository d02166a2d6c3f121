package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeMessage_SuccessOnlyWhenNoReasons(t *testing.T) {
	tier, message := ComposeMessage(Result{Eligible: true})

	assert.Equal(t, TierSuccess, tier)
	assert.Contains(t, message, "Congratulations")
	assert.Contains(t, message, "5-7 business days")
}

func TestComposeMessage_SingleAreaReasonIsWarning(t *testing.T) {
	result := Check(Input{
		Age:        45,
		Pincode:    "999999",
		HealthInfo: "Good health, no chronic conditions.",
		Mobile:     "9876543210",
	})

	tier, message := ComposeMessage(result)

	assert.Equal(t, TierWarning, tier)
	assert.Contains(t, message, "not currently available in your area")
	assert.Contains(t, message, "expanding our trial locations")
}

func TestComposeMessage_SingleHealthReviewReasonIsWarning(t *testing.T) {
	result := Check(Input{
		Age:        50,
		Pincode:    "400001",
		HealthInfo: "Currently pregnant and taking prenatal vitamins.",
		Mobile:     "9876543210",
	})

	tier, message := ComposeMessage(result)

	assert.Equal(t, TierWarning, tier)
	assert.Contains(t, message, "doesn't disqualify you from all trials")
}

func TestComposeMessage_SingleOtherReasonIsError(t *testing.T) {
	// One reason, but not an area or health-review one: still a hard error.
	result := Check(Input{
		Age:        17,
		Pincode:    "110001",
		HealthInfo: "Healthy college student. No medical issues. Active lifestyle.",
		Mobile:     "9876543210",
	})

	assert.Len(t, result.Reasons, 1)

	tier, message := ComposeMessage(result)

	assert.Equal(t, TierError, tier)
	assert.Contains(t, message, "at least 18 years old")
	assert.Contains(t, message, "1-800-TRIALS-1")
}

func TestComposeMessage_MultipleReasonsJoined(t *testing.T) {
	result := Check(Input{
		Age:        16,
		Pincode:    "999999",
		HealthInfo: "Active cancer treatment",
		Mobile:     "98765",
	})

	tier, message := ComposeMessage(result)

	assert.Equal(t, TierError, tier)
	// All reasons concatenated with the fixed separator.
	assert.Contains(t, message, "at least 18 years old; Clinical trials are not currently available")
	assert.Contains(t, message, "1-800-TRIALS-1")
}
