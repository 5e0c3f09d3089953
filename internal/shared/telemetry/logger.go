package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const tsLayout = "2006-01-02T15:04:05.000Z07:00"

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write("info", msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write("warn", msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write("error", msg, fields)
}

func write(level, msg string, fields map[string]any) {
	entry := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		entry[k] = v
	}
	// Reserved keys are set last so fields cannot shadow them.
	entry["ts"] = time.Now().UTC().Format(tsLayout)
	entry["level"] = level
	entry["msg"] = msg
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stdout, `{"ts":"%s","level":"error","msg":"logger marshal failed","err":%q}`+"\n", time.Now().UTC().Format(tsLayout), err.Error())
		return
	}
	fmt.Fprintln(os.Stdout, string(data))
}
