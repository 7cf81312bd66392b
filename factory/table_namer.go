package factory

// TableNamer can be implemented by model structs to override the table
// name factorygen inferred for them.
type TableNamer interface {
	TableName() string
}

// ResolveTableName returns the table name for model type T: the
// TableNamer override when T implements it (value or pointer receiver),
// otherwise fallback. Generated Insert methods call this so a renamed
// table needs no regeneration.
func ResolveTableName[T any](fallback string) string {
	var zero T
	if tn, ok := any(&zero).(TableNamer); ok {
		return tn.TableName()
	}
	return fallback
}
