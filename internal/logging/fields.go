package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"

	// Pipeline fields.
	FieldSnapshot     = "snapshot"
	FieldLine         = "line"
	FieldOffset       = "offset"
	FieldElements     = "elements"
	FieldInstructions = "instructions"
	FieldOccupied     = "occupied_lines"

	// Cache fields.
	FieldCacheSize     = "cache_size"
	FieldCacheCapacity = "cache_capacity"
	FieldCacheHits     = "cache_hits"
	FieldCacheMisses   = "cache_misses"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
