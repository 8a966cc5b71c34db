package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// formatter adds the owning component's name to each log entry.
type formatter struct {
	owner string
	lf    log.Formatter
}

// Format satisfies the log.Formatter interface.
func (f *formatter) Format(e *log.Entry) ([]byte, error) {
	e.Message = fmt.Sprintf("[%s] %s", f.owner, e.Message)
	return f.lf.Format(e)
}

// NewLogger returns a logger whose entries are tagged with the owner name.
// Every component carries its own logger.
func NewLogger(owner string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&formatter{
		owner: owner,
		lf: &log.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
	return logger
}

// SetupLogFile redirects the logger's output to <folder>/<owner>.log,
// creating the folder if needed. Panics on filesystem errors since this is
// one-time setup done at process start.
func SetupLogFile(logger *log.Logger, folder, owner string) {
	if err := os.MkdirAll(folder, 0777); err != nil {
		panic(err)
	}
	f, err := os.Create(filepath.Join(folder, owner+".log"))
	if err != nil {
		panic(err)
	}
	logger.SetFormatter(&formatter{
		owner: owner,
		lf: &log.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
	logger.SetOutput(f)
}
