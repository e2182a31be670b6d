package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger: production JSON encoding on stderr so
// command output stays clean on stdout.
func New() (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
