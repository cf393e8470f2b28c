package response_models

type DestinationSuggestion struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}
