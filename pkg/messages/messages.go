package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	MissingApiKeyMsg    = "FATAL ERROR: Please set 'RIOT_API_KEY' environment variable."
	MissingFieldMsg     = "response is missing the field %s"
	NetworkRetryMsg     = "[Network Error] %v. Retrying in %s..."
	RateLimitedMsg      = "[Limit] Rate limit hit. Sleeping for %s..."
	RetriesExhaustedMsg = "gave up on URL %s after %d attempts"
	TargetNotFoundMsg   = "Target player not found in this match (Arena mode or data mismatch)."
)
