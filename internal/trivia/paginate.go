package trivia

// Paginate returns the 1-based page of items, QuestionsPerPage at a time.
// Pages outside the available range yield an empty slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
