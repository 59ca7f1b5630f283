package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	// Database table names
	TableProjects       = "projects"
	TableLocales        = "locales"
	TableProjectLocales = "project_locales"
	TableResources      = "resources"
	TableEntities       = "entities"
	TableTranslations   = "translations"
	TableUsers          = "users"
	TableUserProfiles   = "user_profiles"
	TableNotifications  = "notifications"

	// ActorTypeProject marks a notification whose source is a project.
	ActorTypeProject = "project"
)
