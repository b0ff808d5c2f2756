// Package metrics exposes application metrics collectors.
package metrics

const (
	statusSuccess = "success"
	statusError   = "error"
	unknown       = "unknown"
)

func statusOf(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

func orUnknown(label string) string {
	if label == "" {
		return unknown
	}
	return label
}
