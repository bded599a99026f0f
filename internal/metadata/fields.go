package metadata

// Archive members produced by `tw runs dump` that carry the metadata this
// tool flattens.
const (
	LoadMetricsFile = "workflow-load.json"
	WorkflowFile    = "workflow.json"
)

// LoadMetricsKeys are the resource-usage fields read from the load-metrics
// member. Order is part of the output contract.
var LoadMetricsKeys = []string{
	"cpuEfficiency",
	"memoryEfficiency",
	"cost",
	"readBytes",
	"writeBytes",
	"peakCpus",
	"peakMemory",
	"dateCreated",
	"lastUpdated",
}

// WorkflowKeys are the execution fields read from the workflow descriptor
// member. "params" is extracted whole alongside the individual
// "params.input" and "params.outdir" paths; all three become separate keys
// in the output.
var WorkflowKeys = []string{
	"status",
	"repository",
	"id",
	"submit",
	"start",
	"complete",
	"dateCreated",
	"lastUpdated",
	"runName",
	"projectName",
	"commitId",
	"sessionId",
	"userName",
	"commandLine",
	"params",
	"configFiles",
	"configText",
	"duration",
	"params.input",
	"params.outdir",
}

// Document flattens the two member trees against their key lists and merges
// them into one mapping. On the shared keys, dateCreated and lastUpdated,
// the workflow descriptor wins over the load metrics.
func Document(loadMetrics, workflow any) *Mapping {
	doc := Extract(loadMetrics, LoadMetricsKeys)
	doc.Merge(Extract(workflow, WorkflowKeys))
	return doc
}
