package constants

// Teacher employment status values.
const (
	TeacherStatusActive   = "ACTIVE"
	TeacherStatusOnLeave  = "ON_LEAVE"
	TeacherStatusResigned = "RESIGNED"
)

var TeacherStatuses = []string{
	TeacherStatusActive,
	TeacherStatusOnLeave,
	TeacherStatusResigned,
}
