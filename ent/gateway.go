// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
)

// Gateway is the model entity for the Gateway schema.
type Gateway struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform gateway.Platform `json:"platform,omitempty"`
	// Platform server/guild identifier; empty for platforms without servers
	ServerID string `json:"server_id,omitempty"`
	// ChannelID holds the value of the "channel_id" field.
	ChannelID string `json:"channel_id,omitempty"`
	// CommunityID holds the value of the "community_id" field.
	CommunityID string `json:"community_id,omitempty"`
	// One-time code the operator enters to complete platform onboarding
	ActivationCode string `json:"activation_code,omitempty"`
	// Activated holds the value of the "activated" field.
	Activated bool `json:"activated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ActivatedAt holds the value of the "activated_at" field.
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GatewayQuery when eager-loading is set.
	Edges        GatewayEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GatewayEdges holds the relations/edges for other nodes in the graph.
type GatewayEdges struct {
	// Community holds the value of the community edge.
	Community *Community `json:"community,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CommunityOrErr returns the Community value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GatewayEdges) CommunityOrErr() (*Community, error) {
	if e.Community != nil {
		return e.Community, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: community.Label}
	}
	return nil, &NotLoadedError{edge: "community"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Gateway) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gateway.FieldActivated:
			values[i] = new(sql.NullBool)
		case gateway.FieldID, gateway.FieldPlatform, gateway.FieldServerID, gateway.FieldChannelID, gateway.FieldCommunityID, gateway.FieldActivationCode:
			values[i] = new(sql.NullString)
		case gateway.FieldCreatedAt, gateway.FieldActivatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Gateway fields.
func (_m *Gateway) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gateway.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gateway.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = gateway.Platform(value.String)
			}
		case gateway.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case gateway.FieldChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_id", values[i])
			} else if value.Valid {
				_m.ChannelID = value.String
			}
		case gateway.FieldCommunityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field community_id", values[i])
			} else if value.Valid {
				_m.CommunityID = value.String
			}
		case gateway.FieldActivationCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activation_code", values[i])
			} else if value.Valid {
				_m.ActivationCode = value.String
			}
		case gateway.FieldActivated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field activated", values[i])
			} else if value.Valid {
				_m.Activated = value.Bool
			}
		case gateway.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gateway.FieldActivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activated_at", values[i])
			} else if value.Valid {
				_m.ActivatedAt = new(time.Time)
				*_m.ActivatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Gateway.
// This includes values selected through modifiers, order, etc.
func (_m *Gateway) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCommunity queries the "community" edge of the Gateway entity.
func (_m *Gateway) QueryCommunity() *CommunityQuery {
	return NewGatewayClient(_m.config).QueryCommunity(_m)
}

// Update returns a builder for updating this Gateway.
// Note that you need to call Gateway.Unwrap() before calling this method if this Gateway
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Gateway) Update() *GatewayUpdateOne {
	return NewGatewayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Gateway entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Gateway) Unwrap() *Gateway {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Gateway is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Gateway) String() string {
	var builder strings.Builder
	builder.WriteString("Gateway(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("platform=")
	builder.WriteString(fmt.Sprintf("%v", _m.Platform))
	builder.WriteString(", ")
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("channel_id=")
	builder.WriteString(_m.ChannelID)
	builder.WriteString(", ")
	builder.WriteString("community_id=")
	builder.WriteString(_m.CommunityID)
	builder.WriteString(", ")
	builder.WriteString("activation_code=")
	builder.WriteString(_m.ActivationCode)
	builder.WriteString(", ")
	builder.WriteString("activated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ActivatedAt; v != nil {
		builder.WriteString("activated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Gateways is a parsable slice of Gateway.
type Gateways []*Gateway
