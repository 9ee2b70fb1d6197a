package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorHandler logs err under message, together with any extra fields,
// and returns it wrapped so callers can still match the cause.
func ErrorHandler(err error, message string, fields logrus.Fields) error {
	if err == nil {
		return nil
	}

	entry := Logger.WithField("error", err.Error())
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error(message)

	return fmt.Errorf("%s: %w", message, err)
}
