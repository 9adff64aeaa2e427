package models

type TranslateRequest struct {
	Text    string   `json:"text" validate:"required"`
	Targets []string `json:"targets" validate:"required,min=1"`
	Source  string   `json:"source,omitempty"` // display name or "Auto"
}

type TranslateMeta struct {
	DetectedSource string `json:"detectedSource"`
}

type TranslateResponse struct {
	Results map[string]string `json:"results"`
	Meta    TranslateMeta     `json:"meta"`
}
