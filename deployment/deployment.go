package deployment

// Deployment is one indexed workload known to the service.
type Deployment struct {
	ID            int64   `json:"id"`
	Hash          string  `json:"hash"`
	Namespace     string  `json:"namespace"`
	Name          string  `json:"name"`
	NodeID        *string `json:"node_id,omitempty"`
	Shard         string  `json:"shard"`
	Chain         string  `json:"chain"`
	VersionStatus string  `json:"version_status"`
	Active        bool    `json:"is_active"`
	Paused        bool    `json:"is_paused"`
}

// Assigned reports whether the deployment is assigned to an indexing node.
// Unassigned deployments cannot be paused or resumed.
func (d Deployment) Assigned() bool {
	return d.NodeID != nil
}

// Selector narrows which deployments an operation applies to.
// The zero value selects all deployments.
type Selector struct {
	// Name matches deployment names by substring, case-insensitively.
	Name string

	// Hash matches the content hash exactly. Shard narrows a hash match
	// to a single shard and is ignored without Hash.
	Hash  string
	Shard string

	// Namespace matches the storage namespace exactly.
	Namespace string
}

// ByName selects deployments whose name contains the given fragment.
func ByName(name string) Selector { return Selector{Name: name} }

// ByHash selects deployments by content hash.
func ByHash(hash string) Selector { return Selector{Hash: hash} }

// ByNamespace selects deployments by storage namespace.
func ByNamespace(namespace string) Selector { return Selector{Namespace: namespace} }

// VersionFilter restricts deployments by how their version is used.
type VersionFilter string

const (
	VersionAll     VersionFilter = "all"
	VersionCurrent VersionFilter = "current"
	VersionPending VersionFilter = "pending"
	VersionUsed    VersionFilter = "used"
)

// Matches reports whether a deployment with the given version status passes
// the filter. The zero filter passes everything.
func (f VersionFilter) Matches(status string) bool {
	switch f {
	case VersionCurrent:
		return status == "current"
	case VersionPending:
		return status == "pending"
	case VersionUsed:
		return status == "current" || status == "pending"
	default:
		return true
	}
}
