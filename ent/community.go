// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
)

// Community is the model entity for the Community schema.
type Community struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Platform user id of the community owner
	OwnerID string `json:"owner_id,omitempty"`
	// Feature flags and tunables: translation, AI mode, rate limits, question triggers
	Settings map[string]interface{} `json:"settings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommunityQuery when eager-loading is set.
	Edges        CommunityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommunityEdges holds the relations/edges for other nodes in the graph.
type CommunityEdges struct {
	// Gateways holds the value of the gateways edge.
	Gateways []*Gateway `json:"gateways,omitempty"`
	// Members holds the value of the members edge.
	Members []*Member `json:"members,omitempty"`
	// Workflows holds the value of the workflows edge.
	Workflows []*Workflow `json:"workflows,omitempty"`
	// BotScore holds the value of the bot_score edge.
	BotScore *BotScore `json:"bot_score,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// GatewaysOrErr returns the Gateways value or an error if the edge
// was not loaded in eager-loading.
func (e CommunityEdges) GatewaysOrErr() ([]*Gateway, error) {
	if e.loadedTypes[0] {
		return e.Gateways, nil
	}
	return nil, &NotLoadedError{edge: "gateways"}
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e CommunityEdges) MembersOrErr() ([]*Member, error) {
	if e.loadedTypes[1] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// WorkflowsOrErr returns the Workflows value or an error if the edge
// was not loaded in eager-loading.
func (e CommunityEdges) WorkflowsOrErr() ([]*Workflow, error) {
	if e.loadedTypes[2] {
		return e.Workflows, nil
	}
	return nil, &NotLoadedError{edge: "workflows"}
}

// BotScoreOrErr returns the BotScore value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommunityEdges) BotScoreOrErr() (*BotScore, error) {
	if e.BotScore != nil {
		return e.BotScore, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: botscore.Label}
	}
	return nil, &NotLoadedError{edge: "bot_score"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Community) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case community.FieldSettings:
			values[i] = new([]byte)
		case community.FieldID, community.FieldName, community.FieldOwnerID:
			values[i] = new(sql.NullString)
		case community.FieldCreatedAt, community.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Community fields.
func (_m *Community) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case community.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case community.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case community.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case community.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case community.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case community.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Community.
// This includes values selected through modifiers, order, etc.
func (_m *Community) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGateways queries the "gateways" edge of the Community entity.
func (_m *Community) QueryGateways() *GatewayQuery {
	return NewCommunityClient(_m.config).QueryGateways(_m)
}

// QueryMembers queries the "members" edge of the Community entity.
func (_m *Community) QueryMembers() *MemberQuery {
	return NewCommunityClient(_m.config).QueryMembers(_m)
}

// QueryWorkflows queries the "workflows" edge of the Community entity.
func (_m *Community) QueryWorkflows() *WorkflowQuery {
	return NewCommunityClient(_m.config).QueryWorkflows(_m)
}

// QueryBotScore queries the "bot_score" edge of the Community entity.
func (_m *Community) QueryBotScore() *BotScoreQuery {
	return NewCommunityClient(_m.config).QueryBotScore(_m)
}

// Update returns a builder for updating this Community.
// Note that you need to call Community.Unwrap() before calling this method if this Community
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Community) Update() *CommunityUpdateOne {
	return NewCommunityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Community entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Community) Unwrap() *Community {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Community is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Community) String() string {
	var builder strings.Builder
	builder.WriteString("Community(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Communities is a parsable slice of Community.
type Communities []*Community
