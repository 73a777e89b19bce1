package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRecordNotFound = errors.New("leave record not found")
	ErrOverlappingLeave    = errors.New("employee already has leave in the given period")
	ErrLeaveAlreadyInState = errors.New("leave record is already in the desired approval state")
	ErrNoLeaveRecords      = errors.New("no leave records found")
)
