package ihmc

// NewHomeLeftArm builds a go-home command for the left arm.
func NewHomeLeftArm(p MessageParameters) GoHome {
	return GoHome{
		HumanoidBodyPart: BodyPartArm,
		RobotSide:        RobotSideLeft,
		TrajectoryTime:   p.GoHomeTrajectoryTime,
	}
}

// NewHomeRightArm builds a go-home command for the right arm.
func NewHomeRightArm(p MessageParameters) GoHome {
	return GoHome{
		HumanoidBodyPart: BodyPartArm,
		RobotSide:        RobotSideRight,
		TrajectoryTime:   p.GoHomeTrajectoryTime,
	}
}

// NewHomeChest builds a go-home command for the chest.
func NewHomeChest(p MessageParameters) GoHome {
	return GoHome{
		HumanoidBodyPart: BodyPartChest,
		TrajectoryTime:   p.GoHomeTrajectoryTime,
	}
}

// NewHomePelvis builds a go-home command for the pelvis.
func NewHomePelvis(p MessageParameters) GoHome {
	return GoHome{
		HumanoidBodyPart: BodyPartPelvis,
		TrajectoryTime:   p.GoHomeTrajectoryTime,
	}
}
