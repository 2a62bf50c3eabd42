// Package builder assembles a workflow graph during one editor session. The
// graph is stored as the workflow's actions blob and never executed.
package builder

import (
	"agent-server/internal/store"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var (
	ErrNameRequired   = errors.New("workflow name is required")
	ErrInvalidKind    = errors.New("invalid node kind")
	ErrNodeNotFound   = errors.New("node not found")
	ErrSelfConnection = errors.New("a node cannot connect to itself")
)

type NodeKind string

const (
	KindTrigger   NodeKind = "trigger"
	KindCondition NodeKind = "condition"
	KindAction    NodeKind = "action"
)

func (k NodeKind) valid() bool {
	return k == KindTrigger || k == KindCondition || k == KindAction
}

// nodeType is the graph editor's rendering hint for a kind.
func (k NodeKind) nodeType() string {
	switch k {
	case KindTrigger:
		return "input"
	case KindAction:
		return "output"
	default:
		return "default"
	}
}

func (k NodeKind) defaultLabel() string {
	switch k {
	case KindTrigger:
		return "Trigger"
	case KindCondition:
		return "Condition"
	default:
		return "Action"
	}
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type NodeData struct {
	Label       string   `json:"label"`
	Kind        NodeKind `json:"kind"`
	TriggerType string   `json:"triggerType,omitempty"`
}

type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// ActionTemplate is a suggested action step for the editor palette.
type ActionTemplate struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var ActionTemplates = []ActionTemplate{
	{ID: "send_email", Label: "Send Email", Description: "Send a personalized email to the lead"},
	{ID: "assign_agent", Label: "Assign Agent", Description: "Automatically assign the lead to an agent"},
	{ID: "create_task", Label: "Create Task", Description: "Create a follow-up task"},
	{ID: "update_status", Label: "Update Status", Description: "Change the lead status"},
	{ID: "send_sms", Label: "Send SMS", Description: "Send a text message to the lead"},
	{ID: "add_tag", Label: "Add Tag", Description: "Add a tag to the lead for categorization"},
}

// Builder is not safe for concurrent use. Node IDs are unique within one
// builder only.
type Builder struct {
	nextID int
	nodes  []Node
	edges  []Edge
	rng    *rand.Rand
}

// New returns a builder holding the starting "new lead" trigger node.
func New() *Builder {
	return NewWithRand(rand.New(rand.NewSource(rand.Int63())))
}

// NewWithRand uses rng for node placement.
func NewWithRand(rng *rand.Rand) *Builder {
	b := &Builder{nextID: 1, rng: rng}
	b.nodes = append(b.nodes, Node{
		ID:       b.id(KindTrigger),
		Type:     KindTrigger.nodeType(),
		Position: Position{X: 150, Y: 50},
		Data: NodeData{
			Label:       "Trigger: New Lead",
			Kind:        KindTrigger,
			TriggerType: store.WorkflowTriggerNewLead,
		},
	})
	return b
}

func (b *Builder) id(kind NodeKind) string {
	id := fmt.Sprintf("%s-%d", kind, b.nextID)
	b.nextID++
	return id
}

// AddNode places a node of kind at a random spot. An empty label uses the
// kind's name.
func (b *Builder) AddNode(kind NodeKind, label string) (Node, error) {
	if !kind.valid() {
		return Node{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if strings.TrimSpace(label) == "" {
		label = kind.defaultLabel()
	}

	node := Node{
		ID:   b.id(kind),
		Type: kind.nodeType(),
		Position: Position{
			X: b.rng.Float64()*400 + 100,
			Y: b.rng.Float64()*300 + 100,
		},
		Data: NodeData{Label: label, Kind: kind},
	}
	b.nodes = append(b.nodes, node)
	return node, nil
}

// SetTriggerType sets the trigger carried by a trigger node.
func (b *Builder) SetTriggerType(nodeID, trigger string) error {
	if !store.IsValidWorkflowTrigger(trigger) {
		return fmt.Errorf("invalid trigger type %q", trigger)
	}
	i := b.index(nodeID)
	if i < 0 {
		return ErrNodeNotFound
	}
	if b.nodes[i].Data.Kind != KindTrigger {
		return fmt.Errorf("%w: %s is not a trigger", ErrInvalidKind, nodeID)
	}
	b.nodes[i].Data.TriggerType = trigger
	return nil
}

// Connect adds an edge. Connecting the same pair twice returns the
// existing edge.
func (b *Builder) Connect(source, target string) (Edge, error) {
	if source == target {
		return Edge{}, ErrSelfConnection
	}
	if b.index(source) < 0 || b.index(target) < 0 {
		return Edge{}, ErrNodeNotFound
	}

	id := "xy-edge__" + source + "-" + target
	for _, e := range b.edges {
		if e.ID == id {
			return e, nil
		}
	}
	edge := Edge{ID: id, Source: source, Target: target}
	b.edges = append(b.edges, edge)
	return edge, nil
}

// RemoveNode deletes a node and every edge touching it.
func (b *Builder) RemoveNode(nodeID string) error {
	i := b.index(nodeID)
	if i < 0 {
		return ErrNodeNotFound
	}
	b.nodes = append(b.nodes[:i], b.nodes[i+1:]...)

	kept := b.edges[:0]
	for _, e := range b.edges {
		if e.Source != nodeID && e.Target != nodeID {
			kept = append(kept, e)
		}
	}
	b.edges = kept
	return nil
}

func (b *Builder) index(nodeID string) int {
	for i, n := range b.nodes {
		if n.ID == nodeID {
			return i
		}
	}
	return -1
}

func (b *Builder) Nodes() []Node {
	out := make([]Node, len(b.nodes))
	copy(out, b.nodes)
	return out
}

func (b *Builder) Edges() []Edge {
	out := make([]Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

// TriggerType is the trigger of the first trigger node, or new_lead.
func (b *Builder) TriggerType() string {
	for _, n := range b.nodes {
		if n.Data.Kind == KindTrigger {
			if n.Data.TriggerType != "" {
				return n.Data.TriggerType
			}
			break
		}
	}
	return store.WorkflowTriggerNewLead
}

// Draft is a builder graph ready to be stored as an inactive workflow.
type Draft struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	TriggerType       string      `json:"trigger_type"`
	TriggerConditions store.JSONB `json:"trigger_conditions"`
	Actions           store.JSONB `json:"actions"`
	IsActive          bool        `json:"is_active"`
}

// Payload snapshots the graph. Saved workflows start inactive.
func (b *Builder) Payload(name, description string) (Draft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Draft{}, ErrNameRequired
	}
	return Draft{
		Name:              name,
		Description:       description,
		TriggerType:       b.TriggerType(),
		TriggerConditions: store.JSONB{},
		Actions: store.JSONB{
			"nodes": b.Nodes(),
			"edges": b.Edges(),
		},
		IsActive: false,
	}, nil
}
