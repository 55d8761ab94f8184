package logger

// Logger минимальный контракт структурированного логирования.
// Конкретная реализация (zap) подключается адаптером, чтобы пакеты
// не зависели от библиотеки напрямую.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}
