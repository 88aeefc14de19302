package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
)

func validItem(id, name string) models.Item {
	return models.Item{
		ID:        id,
		Name:      name,
		RoutineID: "rt-1",
		Type:      constants.ItemTask,
		CreatedAt: time.Now(),
	}
}

func TestCheckItems_Clean(t *testing.T) {
	items := []models.Item{
		validItem("1", "Item A"),
		validItem("2", "Item B"),
	}

	result := CheckItems(items)
	if result.HasIssues() {
		t.Errorf("expected no issues, got: %s", result.FormatReport())
	}
	if report := result.FormatReport(); report != "No issues detected." {
		t.Errorf("unexpected clean report: %q", report)
	}
}

func TestCheckItems_DuplicateNames(t *testing.T) {
	items := []models.Item{
		validItem("1", "Item A"),
		validItem("2", "Item B"),
		validItem("3", "Item A"), // Duplicate
	}

	result := CheckItems(items)
	if !result.HasIssues() {
		t.Fatal("expected to detect duplicate item names")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Type == IssueDuplicateName {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected IssueDuplicateName issue type")
	}
}

func TestCheckItems_InvalidSchedule(t *testing.T) {
	item := validItem("1", "Item A")
	item.Recurrence = models.Recurrence{
		Kind:    constants.RecurrenceDaily,
		Entries: []models.ScheduleEntry{{TimeOfDay: "25:99"}},
	}

	result := CheckItems([]models.Item{item})
	if !result.HasIssues() {
		t.Fatal("expected to detect invalid schedule")
	}
	if result.Issues[0].Type != IssueInvalidSchedule {
		t.Errorf("expected IssueInvalidSchedule, got %s", result.Issues[0].Type)
	}
}

func TestCheckItems_ItemWithoutScope(t *testing.T) {
	item := models.Item{ID: "1", Name: "Orphan", Type: constants.ItemTask}

	result := CheckItems([]models.Item{item})
	if !result.HasIssues() {
		t.Fatal("expected to detect item without routine or goal")
	}
	if result.Issues[0].Type != IssueInvalidItem {
		t.Errorf("expected IssueInvalidItem, got %s", result.Issues[0].Type)
	}
}

func TestCheckItems_TemplateOnlyItemsShareNoName(t *testing.T) {
	// Items named purely by their template have an empty name and must not
	// collide with each other.
	a := validItem("1", "")
	a.TemplateID = "ex-pushups"
	b := validItem("2", "")
	b.TemplateID = "ex-squats"

	result := CheckItems([]models.Item{a, b})
	if result.HasIssues() {
		t.Errorf("expected no issues, got: %s", result.FormatReport())
	}
}
