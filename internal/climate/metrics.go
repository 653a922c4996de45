package climate

// MetricDescriptor is static metadata for one tracked climate variable.
type MetricDescriptor struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// The tracked metric set. Descriptors are metadata, not user data; the set
// drives schema validation, gap filling and export columns.
var metricRegistry = []MetricDescriptor{
	{
		Key:         "T2M",
		Name:        "Temperature at 2 Meters",
		Unit:        "°C",
		Description: "Air temperature measured at 2 meters above ground level",
	},
	{
		Key:         "WS10M_MIN",
		Name:        "Minimum Wind Speed at 10 Meters",
		Unit:        "m/s",
		Description: "Minimum wind speed measured at 10 meters above ground level",
	},
}

// Metrics returns the registered metric descriptors.
func Metrics() []MetricDescriptor {
	out := make([]MetricDescriptor, len(metricRegistry))
	copy(out, metricRegistry)
	return out
}

// MetricKeys returns the registered metric keys in registry order.
func MetricKeys() []string {
	keys := make([]string, len(metricRegistry))
	for i, m := range metricRegistry {
		keys[i] = m.Key
	}
	return keys
}

// LookupMetric returns the descriptor for key. The second return value is
// false for unknown keys; callers must handle that case explicitly rather
// than receive a placeholder descriptor.
func LookupMetric(key string) (MetricDescriptor, bool) {
	for _, m := range metricRegistry {
		if m.Key == key {
			return m, true
		}
	}
	return MetricDescriptor{}, false
}
