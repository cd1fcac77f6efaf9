package xmledit

// Outcome reports the result of one invocation: the changed verdict, a
// short message, the match count, and an echo of the operation
// parameters. Exactly one Outcome is produced per invocation, after
// all mutation has been attempted.
type Outcome struct {
	Changed    bool              `yaml:"changed" json:"changed"`
	Msg        string            `yaml:"msg" json:"msg"`
	Count      int               `yaml:"count" json:"count"`
	XPath      string            `yaml:"xpath" json:"xpath"`
	Namespaces map[string]string `yaml:"namespaces,omitempty" json:"namespaces,omitempty"`
	State      State             `yaml:"state" json:"state"`
	Paths      []string          `yaml:"paths,omitempty" json:"paths,omitempty"`
	DryRun     bool              `yaml:"dry_run,omitempty" json:"dry_run,omitempty"`
}
