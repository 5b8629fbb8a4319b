package queuevalues

import "slices"

// Ranked queues accepted by the league-v4 apex endpoints.
var RankedQueues = []string{"RANKED_SOLO_5x5", "RANKED_FLEX_SR"}

// IsRanked reports if the queue can be requested on the leaderboard endpoints.
func IsRanked(queue string) bool {
	return slices.Contains(RankedQueues, queue)
}
