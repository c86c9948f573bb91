package deployment

// Command kind tags recorded with every tracked execution.
const (
	KindInfo    = "deployment_info"
	KindPause   = "pause_deployment"
	KindResume  = "resume_deployment"
	KindRestart = "restart_deployment"
)
