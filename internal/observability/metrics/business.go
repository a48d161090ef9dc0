package metrics

// UpdateEntityRows updates the row-count gauge for one entity table.
// Called after seeding and whenever a caller refreshes the counts.
func UpdateEntityRows(entity string, count int64) {
	EntityRowsTotal.WithLabelValues(entity).Set(float64(count))
}

// RecordSeedInserted records bootstrap rows inserted for an entity.
func RecordSeedInserted(entity string, count int) {
	SeedRowsInsertedTotal.WithLabelValues(entity).Add(float64(count))
}

// RecordSeedSkipped records that an entity's seed phase found existing rows
// and inserted nothing.
func RecordSeedSkipped(entity string) {
	SeedSkippedTotal.WithLabelValues(entity).Inc()
}

// RecordStoreError records a store-level failure for the given operation.
func RecordStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}
