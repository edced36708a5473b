package config

const (
	DefaultDatabasePath = "./biblioteca.db"

	// Default bounds for the publication-year report filter.
	MinFilterYear     = 1800
	MaxFilterYear     = 2000
	DefaultFilterYear = 1900
)
