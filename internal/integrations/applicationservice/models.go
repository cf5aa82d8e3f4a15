package applicationservice

// Названия полей multipart формы
const (
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
	fieldEmail     = "email"
	fieldAge       = "age"
	fieldPhoto     = "photo"
	fieldDate      = "date"
	fieldTimeSlot  = "timeSlot"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
