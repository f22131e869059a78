package retrieval

// CostRange is a rupiah price band. Retrieved data is untrusted: absent or
// malformed ranges default to zeros instead of failing the pipeline.
type CostRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Document is a service manual excerpt returned by similarity search.
type Document struct {
	Section    string
	Subsection string
	Content    string
	Score      float64
}

// Issue is a known-problem record returned by similarity search.
type Issue struct {
	Symptom string
	Causes  []string
	Cost    CostRange
	Score   float64
}

// Part is a modification catalog entry returned by structured filtering.
type Part struct {
	Name            string
	Brand           string
	Category        string
	MinStage        int
	Price           CostRange
	PerformanceGain string
	LegalStatus     string
}

// Preset is a stage package looked up by stage number.
type Preset struct {
	Stage     int
	Name      string
	HPTotal   int
	Cost      CostRange
	PartNames []string
}
