package ui

// Template is a preset note body the user can drop into the text
// layer. Inserted bodies pass through the same length cap as typed
// input.
type Template struct {
	Name string
	Body string
}

// Templates returns the built-in presets.
func Templates() []Template {
	return []Template{
		{
			Name: "To-do list",
			Body: "To-do\n=====\n\n[ ] \n[ ] \n[ ] \n",
		},
		{
			Name: "Daily journal",
			Body: "Today\n-----\n\nHighlights:\n\n\nGrateful for:\n\n\nTomorrow:\n\n",
		},
		{
			Name: "Meeting notes",
			Body: "Meeting\n-------\n\nAttendees:\n\nDecisions:\n\nAction items:\n[ ] \n",
		},
		{
			Name: "Blank page",
			Body: "",
		},
	}
}
