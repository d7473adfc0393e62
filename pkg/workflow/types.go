// Package workflow implements the node-graph workflow engine: definition
// types, the structural/semantic/security validator, expression-based
// substitution, webhook execution with signing and retry, and the runner the
// router invokes when a workflow trigger matches.
package workflow

import (
	"encoding/json"
	"fmt"
)

// NodeType tags a node variant.
type NodeType string

const (
	NodeTrigger           NodeType = "trigger"
	NodeCondition         NodeType = "condition"
	NodeTransform         NodeType = "transform"
	NodeLoop              NodeType = "loop"
	NodeActionWebhook     NodeType = "action_webhook"
	NodeActionChatMessage NodeType = "action_chat_message"
	NodeFlowEnd           NodeType = "flow_end"
)

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	switch t {
	case NodeTrigger, NodeCondition, NodeTransform, NodeLoop,
		NodeActionWebhook, NodeActionChatMessage, NodeFlowEnd:
		return true
	}
	return false
}

// DataType is a port's declared semantic type.
type DataType string

const (
	TypeObject  DataType = "object"
	TypeBoolean DataType = "boolean"
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeArray   DataType = "array"
)

// Compatible reports whether a value of type t may flow into a port of type
// other. Object ports accept anything.
func (t DataType) Compatible(other DataType) bool {
	return t == other || other == TypeObject || t == TypeObject
}

// Port is a declared input or output of a node.
type Port struct {
	Name string   `json:"name"`
	Type DataType `json:"type"`
}

// Node is one vertex of a workflow graph. Config carries the per-kind
// settings (trigger command or cron, condition rules, webhook url, ...).
type Node struct {
	ID      string         `json:"node_id"`
	Type    NodeType       `json:"type"`
	Label   string         `json:"label"`
	Config  map[string]any `json:"config,omitempty"`
	Inputs  []Port         `json:"inputs,omitempty"`
	Outputs []Port         `json:"outputs,omitempty"`
}

// OutputPort returns the named output port.
func (n Node) OutputPort(name string) (Port, bool) {
	for _, p := range n.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// InputPort returns the named input port.
func (n Node) InputPort(name string) (Port, bool) {
	for _, p := range n.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// ConfigString reads a string config value; missing or mistyped keys yield "".
func (n Node) ConfigString(key string) string {
	s, _ := n.Config[key].(string)
	return s
}

// Connection is one directed edge from an output port to an input port.
type Connection struct {
	FromNode string `json:"from_node"`
	FromPort string `json:"from_port"`
	ToNode   string `json:"to_node"`
	ToPort   string `json:"to_port"`
}

// Metadata describes a workflow definition.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     int    `json:"version,omitempty"`
}

// Definition is a complete workflow graph.
type Definition struct {
	Metadata    Metadata        `json:"metadata"`
	Nodes       map[string]Node `json:"nodes"`
	Connections []Connection    `json:"connections"`
}

// ParseDefinition decodes a stored definition document.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing workflow definition: %w", err)
	}
	return &def, nil
}

// Triggers returns the trigger nodes of the definition.
func (d *Definition) Triggers() []Node {
	var triggers []Node
	for _, n := range d.Nodes {
		if n.Type == NodeTrigger {
			triggers = append(triggers, n)
		}
	}
	return triggers
}

// outgoing returns the connections leaving node id, optionally filtered by
// output port.
func (d *Definition) outgoing(id, port string) []Connection {
	var conns []Connection
	for _, c := range d.Connections {
		if c.FromNode != id {
			continue
		}
		if port != "" && c.FromPort != port {
			continue
		}
		conns = append(conns, c)
	}
	return conns
}
