package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB (pool or open transaction) for the
	// current request. Set by middleware.DBMiddleware, read by BaseHandler.GetDB.
	DBContextKey ContextKey = "db"
)
