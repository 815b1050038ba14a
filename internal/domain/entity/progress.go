package entity

// CompletionPercentage returns 100*completed/total, or 0 when there is nothing to complete.
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}

	return 100 * float64(completed) / float64(total)
}
