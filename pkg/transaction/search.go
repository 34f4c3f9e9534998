package transaction

import "strings"

// Search returns the records whose category or description contains
// query, compared case-insensitively. An empty query or empty record
// set matches nothing. Records missing either text field are skipped.
func Search(records []Transaction, query string) []Transaction {
	if query == "" || len(records) == 0 {
		return nil
	}
	q := strings.ToLower(query)
	var matched []Transaction
	for _, r := range records {
		if r.Category == nil || r.Description == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*r.Category), q) ||
			strings.Contains(strings.ToLower(*r.Description), q) {
			matched = append(matched, r)
		}
	}
	return matched
}
