package core

// Joint names one of the four servos in a fixed order. The order is
// shared by the potentiometer channels, persisted records and reports.
type Joint uint8

const (
	JointBase Joint = iota
	JointArm1
	JointArm2
	JointGripper
)

// MaxAngle is the upper end of every joint's range in degrees.
const MaxAngle = 180

// AllJoints returns the joints in record order.
func AllJoints() []Joint {
	return []Joint{JointBase, JointArm1, JointArm2, JointGripper}
}

func (j Joint) String() string {
	switch j {
	case JointBase:
		return "base"
	case JointArm1:
		return "arm1"
	case JointArm2:
		return "arm2"
	case JointGripper:
		return "gripper"
	}
	return "unknown"
}

// JointAngles is the commanded pose in degrees. Values outside [0,180]
// may be held here; they are clamped when converted to duty cycles or
// persisted.
type JointAngles struct {
	Base    int
	Arm1    int
	Arm2    int
	Gripper int
}

// Get returns the angle of one joint.
func (a JointAngles) Get(j Joint) int {
	switch j {
	case JointBase:
		return a.Base
	case JointArm1:
		return a.Arm1
	case JointArm2:
		return a.Arm2
	default:
		return a.Gripper
	}
}

// Set stores the angle of one joint.
func (a *JointAngles) Set(j Joint, v int) {
	switch j {
	case JointBase:
		a.Base = v
	case JointArm1:
		a.Arm1 = v
	case JointArm2:
		a.Arm2 = v
	default:
		a.Gripper = v
	}
}

// ClampAngle limits v to [0, MaxAngle].
func ClampAngle(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxAngle {
		return MaxAngle
	}
	return v
}

// Record is the persisted form of a pose: one byte per joint, in
// JointBase..JointGripper order.
type Record [RecordSize]uint8

// RecordFrom converts a pose to its persisted form.
func RecordFrom(a JointAngles) Record {
	var r Record
	for _, j := range AllJoints() {
		r[j] = uint8(ClampAngle(a.Get(j)))
	}
	return r
}

// Angles expands a persisted record back into a pose.
func (r Record) Angles() JointAngles {
	var a JointAngles
	for _, j := range AllJoints() {
		a.Set(j, int(r[j]))
	}
	return a
}
