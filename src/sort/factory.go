package sort

// Create is the factory entry point: it builds the engine named by name
// over a copy of values with a fresh Recorder. Unknown names yield nil.
func Create(name string, values []float64) Engine {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		logger.Warnf("create engine: %s", err)
		return nil
	}
	e, err := New(alg, FromValues(values), NewRecorder())
	if err != nil {
		logger.Warnf("create engine: %s", err)
		return nil
	}
	return e
}
