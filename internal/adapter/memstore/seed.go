package memstore

var exampleTasks = []struct {
	title       string
	description string
}{
	{"Buy groceries", "Milk, eggs, bread, and coffee"},
	{"Call the dentist", "Reschedule the Thursday appointment"},
	{"Finish the report", "Final review before sending it out"},
}

// SeedExamples loads a small fixed set of tasks so a fresh instance has
// something to show. Inserts go through Add, so they get real IDs.
func (s *Store) SeedExamples() {
	for _, t := range exampleTasks {
		// Titles are static literals and always pass validation.
		_, _ = s.Add(t.title, t.description)
	}
}
