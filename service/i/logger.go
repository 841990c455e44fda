package i

// Logger is the line logger shared by services.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
