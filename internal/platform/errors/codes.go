package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Scenario errors
	CodeScenarioEmptyID           Code = "SCENARIO_EMPTY_ID"
	CodeScenarioNoCapital         Code = "SCENARIO_NO_CAPITAL"
	CodeScenarioDuplicateProvince Code = "SCENARIO_DUPLICATE_PROVINCE"
	CodeScenarioInvalidCategory   Code = "SCENARIO_INVALID_CATEGORY"
	CodeScenarioInvalidStatus     Code = "SCENARIO_INVALID_STATUS"

	// Repression campaign errors
	CodeCampaignEmptySector      Code = "CAMPAIGN_EMPTY_SECTOR"
	CodeCampaignInvalidIntensity Code = "CAMPAIGN_INVALID_INTENSITY"
	CodeCampaignStillActive      Code = "CAMPAIGN_STILL_ACTIVE"
	CodeCampaignCoolingDown      Code = "CAMPAIGN_COOLING_DOWN"
	CodeCampaignEnded            Code = "CAMPAIGN_ENDED"

	// Succession bond errors
	CodeBondInvalidMentorship Code = "BOND_INVALID_MENTORSHIP"
	CodeBondRankTooLow        Code = "BOND_RANK_TOO_LOW"

	// Run/storage errors
	CodeRunEmptyID Code = "RUN_EMPTY_ID"
	CodeNotFound   Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeScenarioEmptyID,
		CodeScenarioNoCapital,
		CodeScenarioDuplicateProvince,
		CodeScenarioInvalidCategory,
		CodeScenarioInvalidStatus,
		CodeCampaignEmptySector,
		CodeCampaignInvalidIntensity,
		CodeBondInvalidMentorship,
		CodeBondRankTooLow,
		CodeRunEmptyID:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeCampaignStillActive,
		CodeCampaignCoolingDown,
		CodeCampaignEnded:
		return codes.FailedPrecondition

	// NotFound - missing records
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
