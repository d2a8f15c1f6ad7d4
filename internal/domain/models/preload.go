package models

// PreloadFailure records one asset that could not be warmed.
type PreloadFailure struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// PreloadReport summarises a preload batch.
type PreloadReport struct {
	Requested int              `json:"requested"`
	Loaded    int              `json:"loaded"`
	Cached    int              `json:"cached"`
	Failed    int              `json:"failed"`
	Failures  []PreloadFailure `json:"failures,omitempty"`
}
