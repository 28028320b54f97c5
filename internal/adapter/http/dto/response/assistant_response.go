package response

type ChatResponse struct {
	Response string   `json:"response"`
	Files    []string `json:"files"`
}

type EnhanceResponse struct {
	FormattedText string `json:"formatted_text"`
}
