package workflow

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/waddlebot/waddlebot-core/pkg/config"
)

// Report is the deterministic validation outcome for one definition.
type Report struct {
	IsValid    bool                `json:"is_valid"`
	Errors     []string            `json:"errors"`
	Warnings   []string            `json:"warnings"`
	NodeErrors map[string][]string `json:"node_errors"`
}

// securityDenyList matches code-injection patterns in user-authored
// expressions. Any match rejects the node.
var securityDenyList = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\beval\s*\(`),
	regexp.MustCompile(`(?i)\bexec\s*\(`),
	regexp.MustCompile(`(?i)\bFunction\s*\(`),
	regexp.MustCompile(`(?i)__import__`),
	regexp.MustCompile(`(?i)\bsubprocess\b`),
	regexp.MustCompile(`(?i)\bos\.system\b`),
	regexp.MustCompile(`(?i)\brequire\s*\(`),
	regexp.MustCompile(`(?i)\bchild_process\b`),
	regexp.MustCompile(`(?i)\bprocess\.env\b`),
	regexp.MustCompile(`(?i)\bimport\s*\(`),
	regexp.MustCompile("`"),
}

// forbiddenTransformFragments are rejected in transform bodies even when the
// deny list misses them.
var forbiddenTransformFragments = []string{"eval(", "exec("}

// cronParser accepts standard five-field cron expressions.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validator checks workflow definitions: structure, graph shape, per-kind
// configuration, complexity caps, and security patterns. It is stateless
// and pure; the same input always produces the same report.
type Validator struct {
	limits config.WorkflowConfig
}

// NewValidator creates a validator with the configured complexity caps.
func NewValidator(limits config.WorkflowConfig) *Validator {
	return &Validator{limits: limits}
}

// Validate runs every check and aggregates the report. Checks are
// independent: one failure does not mask another.
func (v *Validator) Validate(def *Definition) Report {
	r := Report{NodeErrors: make(map[string][]string)}

	v.checkComplexity(def, &r)
	v.checkStructure(def, &r)
	v.checkGraph(def, &r)
	v.checkNodeConfigs(def, &r)
	v.checkSecurity(def, &r)

	r.IsValid = len(r.Errors) == 0 && len(r.NodeErrors) == 0
	return r
}

func (v *Validator) checkComplexity(def *Definition, r *Report) {
	if len(def.Nodes) > v.limits.MaxNodes {
		r.Errors = append(r.Errors,
			fmt.Sprintf("workflow has %d nodes, maximum is %d", len(def.Nodes), v.limits.MaxNodes))
	}
	if len(def.Connections) > v.limits.MaxConnections {
		r.Errors = append(r.Errors,
			fmt.Sprintf("workflow has %d connections, maximum is %d", len(def.Connections), v.limits.MaxConnections))
	}
}

func (v *Validator) checkStructure(def *Definition, r *Report) {
	for id, n := range def.Nodes {
		if n.ID != "" && n.ID != id {
			r.NodeErrors[id] = append(r.NodeErrors[id],
				fmt.Sprintf("node_id %q does not match its map key %q", n.ID, id))
		}
		if !n.Type.Valid() {
			r.NodeErrors[id] = append(r.NodeErrors[id],
				fmt.Sprintf("unknown node type %q", n.Type))
		}
	}

	for i, c := range def.Connections {
		from, fromOK := def.Nodes[c.FromNode]
		if !fromOK {
			r.Errors = append(r.Errors,
				fmt.Sprintf("connection %d references unknown source node %q", i, c.FromNode))
		}
		to, toOK := def.Nodes[c.ToNode]
		if !toOK {
			r.Errors = append(r.Errors,
				fmt.Sprintf("connection %d references unknown destination node %q", i, c.ToNode))
		}
		if !fromOK || !toOK {
			continue
		}

		fromPort, ok := from.OutputPort(c.FromPort)
		if !ok {
			r.Errors = append(r.Errors,
				fmt.Sprintf("connection %d: node %q has no output port %q", i, c.FromNode, c.FromPort))
			continue
		}
		toPort, ok := to.InputPort(c.ToPort)
		if !ok {
			r.Errors = append(r.Errors,
				fmt.Sprintf("connection %d: node %q has no input port %q", i, c.ToNode, c.ToPort))
			continue
		}
		if !fromPort.Type.Compatible(toPort.Type) {
			r.Errors = append(r.Errors,
				fmt.Sprintf("connection %d: port type %s is not compatible with %s", i, fromPort.Type, toPort.Type))
		}
	}
}

func (v *Validator) checkGraph(def *Definition, r *Report) {
	triggers := def.Triggers()
	if len(triggers) == 0 {
		r.Errors = append(r.Errors, "workflow has no trigger node")
	}

	adj := make(map[string][]string)
	for _, c := range def.Connections {
		adj[c.FromNode] = append(adj[c.FromNode], c.ToNode)
	}

	if cycle := findCycle(def, adj); len(cycle) > 0 {
		r.Errors = append(r.Errors,
			fmt.Sprintf("workflow contains a cycle: %s", strings.Join(cycle, " -> ")))
		// Depth is undefined on a cyclic graph.
		return
	}

	reachable := make(map[string]bool)
	maxDepth := 0
	for _, trig := range triggers {
		d := walkDepth(trig.ID, adj, reachable, make(map[string]int))
		if d > maxDepth {
			maxDepth = d
		}
	}
	if maxDepth > v.limits.MaxDepth {
		r.Errors = append(r.Errors,
			fmt.Sprintf("workflow depth %d exceeds maximum %d", maxDepth, v.limits.MaxDepth))
	}

	for id := range def.Nodes {
		if !reachable[id] {
			if isTrigger := def.Nodes[id].Type == NodeTrigger; !isTrigger {
				r.Warnings = append(r.Warnings,
					fmt.Sprintf("node %q is not reachable from any trigger", id))
			}
		}
	}
}

// findCycle runs a three-color DFS and returns the first cycle found, in
// deterministic node order.
func findCycle(def *Definition, adj map[string][]string) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int)
	var cycle []string

	var visit func(id string, path []string) bool
	visit = func(id string, path []string) bool {
		color[id] = gray
		path = append(path, id)
		for _, next := range sorted(adj[id]) {
			switch color[next] {
			case gray:
				// Close the loop for the report.
				cycle = append(append(cycle, path...), next)
				return true
			case white:
				if visit(next, path) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, id := range sortedKeys(def.Nodes) {
		if color[id] == white {
			if visit(id, nil) {
				return cycle
			}
		}
	}
	return nil
}

// walkDepth marks reachability and returns the longest path length from id.
func walkDepth(id string, adj map[string][]string, reachable map[string]bool, memo map[string]int) int {
	reachable[id] = true
	if d, ok := memo[id]; ok {
		return d
	}
	depth := 1
	for _, next := range adj[id] {
		if d := walkDepth(next, adj, reachable, memo) + 1; d > depth {
			depth = d
		}
	}
	memo[id] = depth
	return depth
}

func (v *Validator) checkNodeConfigs(def *Definition, r *Report) {
	for _, id := range sortedKeys(def.Nodes) {
		n := def.Nodes[id]
		for _, msg := range validateNodeConfig(n) {
			r.NodeErrors[id] = append(r.NodeErrors[id], msg)
		}
	}
}

// validateNodeConfig applies the per-kind configuration rules.
func validateNodeConfig(n Node) []string {
	var errs []string
	switch n.Type {
	case NodeTrigger:
		switch trigType := n.ConfigString("trigger_type"); trigType {
		case "command":
			if n.ConfigString("command") == "" {
				errs = append(errs, "command trigger requires a command")
			}
		case "schedule":
			cronExpr := n.ConfigString("cron")
			if cronExpr == "" {
				errs = append(errs, "schedule trigger requires a cron expression")
			} else if _, err := cronParser.Parse(cronExpr); err != nil {
				errs = append(errs, fmt.Sprintf("invalid cron expression %q: %v", cronExpr, err))
			}
		default:
			errs = append(errs, fmt.Sprintf("unknown trigger_type %q", trigType))
		}
	case NodeCondition:
		rules, _ := n.Config["rules"].([]any)
		if len(rules) == 0 {
			errs = append(errs, "condition node requires at least one rule")
		}
	case NodeTransform:
		body := n.ConfigString("expression")
		for _, frag := range forbiddenTransformFragments {
			if strings.Contains(strings.ToLower(body), frag) {
				errs = append(errs, fmt.Sprintf("transform body contains forbidden fragment %q", frag))
			}
		}
		if n.ConfigString("variable") == "" {
			errs = append(errs, "transform node requires a target variable")
		}
	case NodeLoop:
		if n.ConfigString("items") == "" {
			errs = append(errs, "loop node requires an iterable binding")
		}
	case NodeActionWebhook:
		raw := n.ConfigString("url")
		if raw == "" {
			errs = append(errs, "webhook node requires a url")
			break
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("webhook url %q is not a valid http(s) url", raw))
		}
	case NodeActionChatMessage:
		if n.ConfigString("message") == "" {
			errs = append(errs, "chat message node requires a message")
		}
	}
	return errs
}

// checkSecurity matches every user-authored string in node configs against
// the deny list.
func (v *Validator) checkSecurity(def *Definition, r *Report) {
	for _, id := range sortedKeys(def.Nodes) {
		n := def.Nodes[id]
		for key, val := range n.Config {
			s, ok := val.(string)
			if !ok {
				continue
			}
			for _, deny := range securityDenyList {
				if deny.MatchString(s) {
					r.NodeErrors[id] = append(r.NodeErrors[id],
						fmt.Sprintf("config %q matches forbidden pattern %q", key, deny.String()))
					break
				}
			}
		}
	}
}

func sortedKeys(nodes map[string]Node) []string {
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	return sorted(keys)
}

func sorted(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
