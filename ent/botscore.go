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

// BotScore is the model entity for the BotScore schema.
type BotScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CommunityID holds the value of the "community_id" field.
	CommunityID string `json:"community_id,omitempty"`
	// Weighted composite, clamped to [0,100]
	Overall int `json:"overall,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// SizeCategory holds the value of the "size_category" field.
	SizeCategory botscore.SizeCategory `json:"size_category,omitempty"`
	// BadActorScore holds the value of the "bad_actor_score" field.
	BadActorScore float64 `json:"bad_actor_score,omitempty"`
	// ReputationScore holds the value of the "reputation_score" field.
	ReputationScore float64 `json:"reputation_score,omitempty"`
	// SecurityScore holds the value of the "security_score" field.
	SecurityScore float64 `json:"security_score,omitempty"`
	// AiBehavioralScore holds the value of the "ai_behavioral_score" field.
	AiBehavioralScore float64 `json:"ai_behavioral_score,omitempty"`
	// Weights holds the value of the "weights" field.
	Weights map[string]float64 `json:"weights,omitempty"`
	// CalculatedAt holds the value of the "calculated_at" field.
	CalculatedAt time.Time `json:"calculated_at,omitempty"`
	// NextRecalculation holds the value of the "next_recalculation" field.
	NextRecalculation time.Time `json:"next_recalculation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BotScoreQuery when eager-loading is set.
	Edges        BotScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BotScoreEdges holds the relations/edges for other nodes in the graph.
type BotScoreEdges struct {
	// Community holds the value of the community edge.
	Community *Community `json:"community,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CommunityOrErr returns the Community value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BotScoreEdges) CommunityOrErr() (*Community, error) {
	if e.Community != nil {
		return e.Community, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: community.Label}
	}
	return nil, &NotLoadedError{edge: "community"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BotScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case botscore.FieldWeights:
			values[i] = new([]byte)
		case botscore.FieldBadActorScore, botscore.FieldReputationScore, botscore.FieldSecurityScore, botscore.FieldAiBehavioralScore:
			values[i] = new(sql.NullFloat64)
		case botscore.FieldID, botscore.FieldOverall:
			values[i] = new(sql.NullInt64)
		case botscore.FieldCommunityID, botscore.FieldGrade, botscore.FieldSizeCategory:
			values[i] = new(sql.NullString)
		case botscore.FieldCalculatedAt, botscore.FieldNextRecalculation:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BotScore fields.
func (_m *BotScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case botscore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case botscore.FieldCommunityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field community_id", values[i])
			} else if value.Valid {
				_m.CommunityID = value.String
			}
		case botscore.FieldOverall:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall", values[i])
			} else if value.Valid {
				_m.Overall = int(value.Int64)
			}
		case botscore.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case botscore.FieldSizeCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size_category", values[i])
			} else if value.Valid {
				_m.SizeCategory = botscore.SizeCategory(value.String)
			}
		case botscore.FieldBadActorScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bad_actor_score", values[i])
			} else if value.Valid {
				_m.BadActorScore = value.Float64
			}
		case botscore.FieldReputationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reputation_score", values[i])
			} else if value.Valid {
				_m.ReputationScore = value.Float64
			}
		case botscore.FieldSecurityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field security_score", values[i])
			} else if value.Valid {
				_m.SecurityScore = value.Float64
			}
		case botscore.FieldAiBehavioralScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_behavioral_score", values[i])
			} else if value.Valid {
				_m.AiBehavioralScore = value.Float64
			}
		case botscore.FieldWeights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weights); err != nil {
					return fmt.Errorf("unmarshal field weights: %w", err)
				}
			}
		case botscore.FieldCalculatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_at", values[i])
			} else if value.Valid {
				_m.CalculatedAt = value.Time
			}
		case botscore.FieldNextRecalculation:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_recalculation", values[i])
			} else if value.Valid {
				_m.NextRecalculation = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BotScore.
// This includes values selected through modifiers, order, etc.
func (_m *BotScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCommunity queries the "community" edge of the BotScore entity.
func (_m *BotScore) QueryCommunity() *CommunityQuery {
	return NewBotScoreClient(_m.config).QueryCommunity(_m)
}

// Update returns a builder for updating this BotScore.
// Note that you need to call BotScore.Unwrap() before calling this method if this BotScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BotScore) Update() *BotScoreUpdateOne {
	return NewBotScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BotScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BotScore) Unwrap() *BotScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BotScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BotScore) String() string {
	var builder strings.Builder
	builder.WriteString("BotScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("community_id=")
	builder.WriteString(_m.CommunityID)
	builder.WriteString(", ")
	builder.WriteString("overall=")
	builder.WriteString(fmt.Sprintf("%v", _m.Overall))
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("size_category=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeCategory))
	builder.WriteString(", ")
	builder.WriteString("bad_actor_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BadActorScore))
	builder.WriteString(", ")
	builder.WriteString("reputation_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReputationScore))
	builder.WriteString(", ")
	builder.WriteString("security_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecurityScore))
	builder.WriteString(", ")
	builder.WriteString("ai_behavioral_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiBehavioralScore))
	builder.WriteString(", ")
	builder.WriteString("weights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weights))
	builder.WriteString(", ")
	builder.WriteString("calculated_at=")
	builder.WriteString(_m.CalculatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_recalculation=")
	builder.WriteString(_m.NextRecalculation.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BotScores is a parsable slice of BotScore.
type BotScores []*BotScore
