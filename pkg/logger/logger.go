package logger

import "go.uber.org/zap"

var log *zap.Logger

func Init() {
	if log != nil {
		return
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	built, err := cfg.Build()
	if err != nil {
		built = zap.NewNop()
	}
	log = built
}

func Info(event string, fields map[string]interface{}) {
	get().Info(event, zapFields(fields)...)
}

func Warn(event string, fields map[string]interface{}) {
	get().Warn(event, zapFields(fields)...)
}

func Error(event string, fields map[string]interface{}) {
	get().Error(event, zapFields(fields)...)
}

func InfoWithUser(userID, event string, fields map[string]interface{}) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["user_id"] = userID
	Info(event, fields)
}

func get() *zap.Logger {
	if log == nil {
		Init()
	}
	return log
}

func zapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	return out
}
