package service

import (
	"fmt"
	"strings"

	"task-status-viewer/internal/domain"
)

// ResolveTaskID turns "userKey/date/taskName[/extra...]" into a task id.
// With withSuffix, segments after the third are appended joined by "_";
// without it they are ignored, which is the fixed three-segment route.
func ResolveTaskID(path string, withSuffix bool) (domain.TaskID, error) {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return "", fmt.Errorf("%w: %q has %d segment(s), want user/date/task", ErrMalformedPath, path, len(segments))
	}

	userKey, date, taskName := segments[0], segments[1], segments[2]
	if userKey == "" || date == "" || taskName == "" {
		return "", fmt.Errorf("%w: %q has an empty user, date or task segment", ErrMalformedPath, path)
	}

	var extra []string
	if withSuffix {
		extra = segments[3:]
	}

	return domain.NewTaskID(userKey, date, taskName, extra...), nil
}
