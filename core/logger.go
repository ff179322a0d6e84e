package core

type (
	// Logger logs messages along with optional context args (errors, maps, a Person).
	Logger interface {
		Debug(msg string, args ...interface{})
		Info(msg string, args ...interface{})
		Warn(msg string, args ...interface{})
		Error(msg string, args ...interface{})
		Fatal(msg string, args ...interface{})
	}

	// Person identifies whoever a log entry is about.
	Person interface {
		Person() (id, username, email string)
	}
)
