package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultTheme is the template set used for new visitors
	DefaultTheme = "generic"
)
