package models

// DesignSuggestion is the structured concept returned by the generative
// design collaborator for a nameplate customization request.
type DesignSuggestion struct {
	FontFamily   string   `json:"fontFamily"`
	Description  string   `json:"description"`
	ColorPalette []string `json:"colorPalette"`
}
