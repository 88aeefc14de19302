package validation

import (
	"fmt"

	"github.com/julianstephens/vigor/internal/models"
)

// IssueType categorizes a detected problem with an item's configuration.
type IssueType string

const (
	IssueInvalidSchedule IssueType = "invalid_schedule"
	IssueInvalidItem     IssueType = "invalid_item"
	IssueDuplicateName   IssueType = "duplicate_name"
)

// Issue is one detected problem.
type Issue struct {
	Type        IssueType
	ItemID      string
	Description string
}

// Result contains all detected issues for a set of items.
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// CheckItems validates every item and flags duplicate names within the set.
func CheckItems(items []models.Item) Result {
	var result Result

	seen := make(map[string]string)
	for i := range items {
		item := items[i]

		if err := item.Validate(); err != nil {
			issueType := IssueInvalidItem
			if item.Recurrence.Validate() != nil {
				issueType = IssueInvalidSchedule
			}
			result.Issues = append(result.Issues, Issue{
				Type:        issueType,
				ItemID:      item.ID,
				Description: fmt.Sprintf("item %q: %v", item.Name, err),
			})
		}

		if item.Name != "" {
			if otherID, dup := seen[item.Name]; dup {
				result.Issues = append(result.Issues, Issue{
					Type:        IssueDuplicateName,
					ItemID:      item.ID,
					Description: fmt.Sprintf("items %s and %s share the name %q", otherID, item.ID, item.Name),
				})
			} else {
				seen[item.Name] = item.ID
			}
		}
	}

	return result
}
