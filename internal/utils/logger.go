package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per service-layer event. Module groups the
// lines (guard, booking, reconcile, ticket); the request id links them to
// the HTTP access log. Messages should carry ids, never payloads.
func LogEvent(requestID, module, action, message string) {
	if strings.TrimSpace(requestID) == "" {
		requestID = "-"
	}
	line := "[" + strings.ToUpper(module) + "] request_id=" + requestID + " action=" + action
	if message != "" {
		line += " " + message
	}
	log.Print(line)
}
