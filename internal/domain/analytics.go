package domain

// AnalyticsSummary - счётчики по коллекциям на момент запроса
type AnalyticsSummary struct {
	TotalTrees        int64 `json:"total_trees"`
	HealthyTrees      int64 `json:"healthy_trees"`
	WarningTrees      int64 `json:"warning_trees"`
	CriticalTrees     int64 `json:"critical_trees"`
	TotalAreas        int64 `json:"total_areas"`
	TotalTracks       int64 `json:"total_tracks"`
	TotalMeasurements int64 `json:"total_measurements"`
}

type SpeciesCount struct {
	Species string `json:"species"`
	Count   int64  `json:"count"`
}
