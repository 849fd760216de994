package circuitbreaker

const (
	CBEnabled                  = "CB_ENABLED"
	CBName                     = "CB_NAME"
	CBFailureRateThreshold     = "CB_FAILURE_RATE_THRESHOLD"
	CBFailureRateMinimumWindow = "CB_FAILURE_RATE_MINIMUM_WINDOW"
	CBFailureRateWindowInMs    = "CB_FAILURE_RATE_WINDOW_IN_MS"
	CBSuccessCountThreshold    = "CB_SUCCESS_COUNT_THRESHOLD"
	CBSuccessCountWindow       = "CB_SUCCESS_COUNT_WINDOW"
	CBWithDelayInMS            = "CB_WITH_DELAY_IN_MS"
)
