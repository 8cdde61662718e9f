package models

var ModelTypeRegistry = map[string]interface{}{
	"Office":            Office{},
	"Agent":             Agent{},
	"Seller":            Seller{},
	"Buyer":             Buyer{},
	"Listing":           Listing{},
	"Sale":              Sale{},
	"Commission":        Commission{},
	"MonthlyCommission": MonthlyCommission{},
}

// MigrationOrder lists every model with parents ahead of the tables that
// reference them, so foreign key constraints can always be created.
func MigrationOrder() []interface{} {
	return []interface{}{
		&Office{},
		&Agent{},
		&Seller{},
		&Buyer{},
		&Listing{},
		&Sale{},
		&Commission{},
		&MonthlyCommission{},
	}
}
