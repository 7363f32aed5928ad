package game

// TeardownStage is the lifecycle position of an entity being removed
// Stages are only ever entered in declaration order
type TeardownStage uint8

const (
	StageLive TeardownStage = iota
	StageMeshRemoved
	StagePhysicsDetached
	StageGone
)

var stageNames = [...]string{
	StageLive:            "live",
	StageMeshRemoved:     "mesh_removed",
	StagePhysicsDetached: "physics_detached",
	StageGone:            "gone",
}

func (s TeardownStage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}
