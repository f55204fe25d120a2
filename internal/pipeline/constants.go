package pipeline

// Stage names, reported in logs and by Pipeline.Stages.
const (
	stageNameBuild  = "build"
	stageNameRender = "render"
)

// defaultStageCapacity is the number of stages a standard pipeline runs.
const defaultStageCapacity = 2
