package api

type RetrieveResult struct {
	ID string `json:"id,omitempty"`

	Source string `json:"source,omitempty"`

	Score   float32 `json:"score,omitempty"`
	Title   string  `json:"title,omitempty"`
	Content string  `json:"content,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

type Document struct {
	Source string `json:"source"`

	Title  string `json:"title,omitempty"`
	Chunks int    `json:"chunks"`
}
