package i

// Logger is the logging surface shared by services and controllers.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
