// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
)

// BotScoreCreate is the builder for creating a BotScore entity.
type BotScoreCreate struct {
	config
	mutation *BotScoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCommunityID sets the "community_id" field.
func (_c *BotScoreCreate) SetCommunityID(v string) *BotScoreCreate {
	_c.mutation.SetCommunityID(v)
	return _c
}

// SetOverall sets the "overall" field.
func (_c *BotScoreCreate) SetOverall(v int) *BotScoreCreate {
	_c.mutation.SetOverall(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *BotScoreCreate) SetGrade(v string) *BotScoreCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetSizeCategory sets the "size_category" field.
func (_c *BotScoreCreate) SetSizeCategory(v botscore.SizeCategory) *BotScoreCreate {
	_c.mutation.SetSizeCategory(v)
	return _c
}

// SetBadActorScore sets the "bad_actor_score" field.
func (_c *BotScoreCreate) SetBadActorScore(v float64) *BotScoreCreate {
	_c.mutation.SetBadActorScore(v)
	return _c
}

// SetReputationScore sets the "reputation_score" field.
func (_c *BotScoreCreate) SetReputationScore(v float64) *BotScoreCreate {
	_c.mutation.SetReputationScore(v)
	return _c
}

// SetSecurityScore sets the "security_score" field.
func (_c *BotScoreCreate) SetSecurityScore(v float64) *BotScoreCreate {
	_c.mutation.SetSecurityScore(v)
	return _c
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (_c *BotScoreCreate) SetAiBehavioralScore(v float64) *BotScoreCreate {
	_c.mutation.SetAiBehavioralScore(v)
	return _c
}

// SetWeights sets the "weights" field.
func (_c *BotScoreCreate) SetWeights(v map[string]float64) *BotScoreCreate {
	_c.mutation.SetWeights(v)
	return _c
}

// SetCalculatedAt sets the "calculated_at" field.
func (_c *BotScoreCreate) SetCalculatedAt(v time.Time) *BotScoreCreate {
	_c.mutation.SetCalculatedAt(v)
	return _c
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_c *BotScoreCreate) SetNillableCalculatedAt(v *time.Time) *BotScoreCreate {
	if v != nil {
		_c.SetCalculatedAt(*v)
	}
	return _c
}

// SetNextRecalculation sets the "next_recalculation" field.
func (_c *BotScoreCreate) SetNextRecalculation(v time.Time) *BotScoreCreate {
	_c.mutation.SetNextRecalculation(v)
	return _c
}

// SetCommunity sets the "community" edge to the Community entity.
func (_c *BotScoreCreate) SetCommunity(v *Community) *BotScoreCreate {
	return _c.SetCommunityID(v.ID)
}

// Mutation returns the BotScoreMutation object of the builder.
func (_c *BotScoreCreate) Mutation() *BotScoreMutation {
	return _c.mutation
}

// Save creates the BotScore in the database.
func (_c *BotScoreCreate) Save(ctx context.Context) (*BotScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotScoreCreate) SaveX(ctx context.Context) *BotScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotScoreCreate) defaults() {
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		v := botscore.DefaultCalculatedAt()
		_c.mutation.SetCalculatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotScoreCreate) check() error {
	if _, ok := _c.mutation.CommunityID(); !ok {
		return &ValidationError{Name: "community_id", err: errors.New(`ent: missing required field "BotScore.community_id"`)}
	}
	if _, ok := _c.mutation.Overall(); !ok {
		return &ValidationError{Name: "overall", err: errors.New(`ent: missing required field "BotScore.overall"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "BotScore.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := botscore.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "BotScore.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeCategory(); !ok {
		return &ValidationError{Name: "size_category", err: errors.New(`ent: missing required field "BotScore.size_category"`)}
	}
	if v, ok := _c.mutation.SizeCategory(); ok {
		if err := botscore.SizeCategoryValidator(v); err != nil {
			return &ValidationError{Name: "size_category", err: fmt.Errorf(`ent: validator failed for field "BotScore.size_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadActorScore(); !ok {
		return &ValidationError{Name: "bad_actor_score", err: errors.New(`ent: missing required field "BotScore.bad_actor_score"`)}
	}
	if _, ok := _c.mutation.ReputationScore(); !ok {
		return &ValidationError{Name: "reputation_score", err: errors.New(`ent: missing required field "BotScore.reputation_score"`)}
	}
	if _, ok := _c.mutation.SecurityScore(); !ok {
		return &ValidationError{Name: "security_score", err: errors.New(`ent: missing required field "BotScore.security_score"`)}
	}
	if _, ok := _c.mutation.AiBehavioralScore(); !ok {
		return &ValidationError{Name: "ai_behavioral_score", err: errors.New(`ent: missing required field "BotScore.ai_behavioral_score"`)}
	}
	if _, ok := _c.mutation.Weights(); !ok {
		return &ValidationError{Name: "weights", err: errors.New(`ent: missing required field "BotScore.weights"`)}
	}
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		return &ValidationError{Name: "calculated_at", err: errors.New(`ent: missing required field "BotScore.calculated_at"`)}
	}
	if _, ok := _c.mutation.NextRecalculation(); !ok {
		return &ValidationError{Name: "next_recalculation", err: errors.New(`ent: missing required field "BotScore.next_recalculation"`)}
	}
	if len(_c.mutation.CommunityIDs()) == 0 {
		return &ValidationError{Name: "community", err: errors.New(`ent: missing required edge "BotScore.community"`)}
	}
	return nil
}

func (_c *BotScoreCreate) sqlSave(ctx context.Context) (*BotScore, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BotScoreCreate) createSpec() (*BotScore, *sqlgraph.CreateSpec) {
	var (
		_node = &BotScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(botscore.Table, sqlgraph.NewFieldSpec(botscore.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Overall(); ok {
		_spec.SetField(botscore.FieldOverall, field.TypeInt, value)
		_node.Overall = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(botscore.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.SizeCategory(); ok {
		_spec.SetField(botscore.FieldSizeCategory, field.TypeEnum, value)
		_node.SizeCategory = value
	}
	if value, ok := _c.mutation.BadActorScore(); ok {
		_spec.SetField(botscore.FieldBadActorScore, field.TypeFloat64, value)
		_node.BadActorScore = value
	}
	if value, ok := _c.mutation.ReputationScore(); ok {
		_spec.SetField(botscore.FieldReputationScore, field.TypeFloat64, value)
		_node.ReputationScore = value
	}
	if value, ok := _c.mutation.SecurityScore(); ok {
		_spec.SetField(botscore.FieldSecurityScore, field.TypeFloat64, value)
		_node.SecurityScore = value
	}
	if value, ok := _c.mutation.AiBehavioralScore(); ok {
		_spec.SetField(botscore.FieldAiBehavioralScore, field.TypeFloat64, value)
		_node.AiBehavioralScore = value
	}
	if value, ok := _c.mutation.Weights(); ok {
		_spec.SetField(botscore.FieldWeights, field.TypeJSON, value)
		_node.Weights = value
	}
	if value, ok := _c.mutation.CalculatedAt(); ok {
		_spec.SetField(botscore.FieldCalculatedAt, field.TypeTime, value)
		_node.CalculatedAt = value
	}
	if value, ok := _c.mutation.NextRecalculation(); ok {
		_spec.SetField(botscore.FieldNextRecalculation, field.TypeTime, value)
		_node.NextRecalculation = value
	}
	if nodes := _c.mutation.CommunityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   botscore.CommunityTable,
			Columns: []string{botscore.CommunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommunityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BotScore.Create().
//		SetCommunityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BotScoreUpsert) {
//			SetCommunityID(v+v).
//		}).
//		Exec(ctx)
func (_c *BotScoreCreate) OnConflict(opts ...sql.ConflictOption) *BotScoreUpsertOne {
	_c.conflict = opts
	return &BotScoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BotScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BotScoreCreate) OnConflictColumns(columns ...string) *BotScoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BotScoreUpsertOne{
		create: _c,
	}
}

type (
	// BotScoreUpsertOne is the builder for "upsert"-ing
	//  one BotScore node.
	BotScoreUpsertOne struct {
		create *BotScoreCreate
	}

	// BotScoreUpsert is the "OnConflict" setter.
	BotScoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetCommunityID sets the "community_id" field.
func (u *BotScoreUpsert) SetCommunityID(v string) *BotScoreUpsert {
	u.Set(botscore.FieldCommunityID, v)
	return u
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateCommunityID() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldCommunityID)
	return u
}

// SetOverall sets the "overall" field.
func (u *BotScoreUpsert) SetOverall(v int) *BotScoreUpsert {
	u.Set(botscore.FieldOverall, v)
	return u
}

// UpdateOverall sets the "overall" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateOverall() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldOverall)
	return u
}

// AddOverall adds v to the "overall" field.
func (u *BotScoreUpsert) AddOverall(v int) *BotScoreUpsert {
	u.Add(botscore.FieldOverall, v)
	return u
}

// SetGrade sets the "grade" field.
func (u *BotScoreUpsert) SetGrade(v string) *BotScoreUpsert {
	u.Set(botscore.FieldGrade, v)
	return u
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateGrade() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldGrade)
	return u
}

// SetSizeCategory sets the "size_category" field.
func (u *BotScoreUpsert) SetSizeCategory(v botscore.SizeCategory) *BotScoreUpsert {
	u.Set(botscore.FieldSizeCategory, v)
	return u
}

// UpdateSizeCategory sets the "size_category" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateSizeCategory() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldSizeCategory)
	return u
}

// SetBadActorScore sets the "bad_actor_score" field.
func (u *BotScoreUpsert) SetBadActorScore(v float64) *BotScoreUpsert {
	u.Set(botscore.FieldBadActorScore, v)
	return u
}

// UpdateBadActorScore sets the "bad_actor_score" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateBadActorScore() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldBadActorScore)
	return u
}

// AddBadActorScore adds v to the "bad_actor_score" field.
func (u *BotScoreUpsert) AddBadActorScore(v float64) *BotScoreUpsert {
	u.Add(botscore.FieldBadActorScore, v)
	return u
}

// SetReputationScore sets the "reputation_score" field.
func (u *BotScoreUpsert) SetReputationScore(v float64) *BotScoreUpsert {
	u.Set(botscore.FieldReputationScore, v)
	return u
}

// UpdateReputationScore sets the "reputation_score" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateReputationScore() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldReputationScore)
	return u
}

// AddReputationScore adds v to the "reputation_score" field.
func (u *BotScoreUpsert) AddReputationScore(v float64) *BotScoreUpsert {
	u.Add(botscore.FieldReputationScore, v)
	return u
}

// SetSecurityScore sets the "security_score" field.
func (u *BotScoreUpsert) SetSecurityScore(v float64) *BotScoreUpsert {
	u.Set(botscore.FieldSecurityScore, v)
	return u
}

// UpdateSecurityScore sets the "security_score" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateSecurityScore() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldSecurityScore)
	return u
}

// AddSecurityScore adds v to the "security_score" field.
func (u *BotScoreUpsert) AddSecurityScore(v float64) *BotScoreUpsert {
	u.Add(botscore.FieldSecurityScore, v)
	return u
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (u *BotScoreUpsert) SetAiBehavioralScore(v float64) *BotScoreUpsert {
	u.Set(botscore.FieldAiBehavioralScore, v)
	return u
}

// UpdateAiBehavioralScore sets the "ai_behavioral_score" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateAiBehavioralScore() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldAiBehavioralScore)
	return u
}

// AddAiBehavioralScore adds v to the "ai_behavioral_score" field.
func (u *BotScoreUpsert) AddAiBehavioralScore(v float64) *BotScoreUpsert {
	u.Add(botscore.FieldAiBehavioralScore, v)
	return u
}

// SetWeights sets the "weights" field.
func (u *BotScoreUpsert) SetWeights(v map[string]float64) *BotScoreUpsert {
	u.Set(botscore.FieldWeights, v)
	return u
}

// UpdateWeights sets the "weights" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateWeights() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldWeights)
	return u
}

// SetCalculatedAt sets the "calculated_at" field.
func (u *BotScoreUpsert) SetCalculatedAt(v time.Time) *BotScoreUpsert {
	u.Set(botscore.FieldCalculatedAt, v)
	return u
}

// UpdateCalculatedAt sets the "calculated_at" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateCalculatedAt() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldCalculatedAt)
	return u
}

// SetNextRecalculation sets the "next_recalculation" field.
func (u *BotScoreUpsert) SetNextRecalculation(v time.Time) *BotScoreUpsert {
	u.Set(botscore.FieldNextRecalculation, v)
	return u
}

// UpdateNextRecalculation sets the "next_recalculation" field to the value that was provided on create.
func (u *BotScoreUpsert) UpdateNextRecalculation() *BotScoreUpsert {
	u.SetExcluded(botscore.FieldNextRecalculation)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BotScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BotScoreUpsertOne) UpdateNewValues() *BotScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BotScore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BotScoreUpsertOne) Ignore() *BotScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BotScoreUpsertOne) DoNothing() *BotScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BotScoreCreate.OnConflict
// documentation for more info.
func (u *BotScoreUpsertOne) Update(set func(*BotScoreUpsert)) *BotScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BotScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetCommunityID sets the "community_id" field.
func (u *BotScoreUpsertOne) SetCommunityID(v string) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateCommunityID() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateCommunityID()
	})
}

// SetOverall sets the "overall" field.
func (u *BotScoreUpsertOne) SetOverall(v int) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetOverall(v)
	})
}

// AddOverall adds v to the "overall" field.
func (u *BotScoreUpsertOne) AddOverall(v int) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddOverall(v)
	})
}

// UpdateOverall sets the "overall" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateOverall() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateOverall()
	})
}

// SetGrade sets the "grade" field.
func (u *BotScoreUpsertOne) SetGrade(v string) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateGrade() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateGrade()
	})
}

// SetSizeCategory sets the "size_category" field.
func (u *BotScoreUpsertOne) SetSizeCategory(v botscore.SizeCategory) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetSizeCategory(v)
	})
}

// UpdateSizeCategory sets the "size_category" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateSizeCategory() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateSizeCategory()
	})
}

// SetBadActorScore sets the "bad_actor_score" field.
func (u *BotScoreUpsertOne) SetBadActorScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetBadActorScore(v)
	})
}

// AddBadActorScore adds v to the "bad_actor_score" field.
func (u *BotScoreUpsertOne) AddBadActorScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddBadActorScore(v)
	})
}

// UpdateBadActorScore sets the "bad_actor_score" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateBadActorScore() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateBadActorScore()
	})
}

// SetReputationScore sets the "reputation_score" field.
func (u *BotScoreUpsertOne) SetReputationScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetReputationScore(v)
	})
}

// AddReputationScore adds v to the "reputation_score" field.
func (u *BotScoreUpsertOne) AddReputationScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddReputationScore(v)
	})
}

// UpdateReputationScore sets the "reputation_score" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateReputationScore() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateReputationScore()
	})
}

// SetSecurityScore sets the "security_score" field.
func (u *BotScoreUpsertOne) SetSecurityScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetSecurityScore(v)
	})
}

// AddSecurityScore adds v to the "security_score" field.
func (u *BotScoreUpsertOne) AddSecurityScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddSecurityScore(v)
	})
}

// UpdateSecurityScore sets the "security_score" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateSecurityScore() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateSecurityScore()
	})
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (u *BotScoreUpsertOne) SetAiBehavioralScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetAiBehavioralScore(v)
	})
}

// AddAiBehavioralScore adds v to the "ai_behavioral_score" field.
func (u *BotScoreUpsertOne) AddAiBehavioralScore(v float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddAiBehavioralScore(v)
	})
}

// UpdateAiBehavioralScore sets the "ai_behavioral_score" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateAiBehavioralScore() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateAiBehavioralScore()
	})
}

// SetWeights sets the "weights" field.
func (u *BotScoreUpsertOne) SetWeights(v map[string]float64) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetWeights(v)
	})
}

// UpdateWeights sets the "weights" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateWeights() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateWeights()
	})
}

// SetCalculatedAt sets the "calculated_at" field.
func (u *BotScoreUpsertOne) SetCalculatedAt(v time.Time) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetCalculatedAt(v)
	})
}

// UpdateCalculatedAt sets the "calculated_at" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateCalculatedAt() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateCalculatedAt()
	})
}

// SetNextRecalculation sets the "next_recalculation" field.
func (u *BotScoreUpsertOne) SetNextRecalculation(v time.Time) *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetNextRecalculation(v)
	})
}

// UpdateNextRecalculation sets the "next_recalculation" field to the value that was provided on create.
func (u *BotScoreUpsertOne) UpdateNextRecalculation() *BotScoreUpsertOne {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateNextRecalculation()
	})
}

// Exec executes the query.
func (u *BotScoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BotScoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BotScoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BotScoreUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BotScoreUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BotScoreCreateBulk is the builder for creating many BotScore entities in bulk.
type BotScoreCreateBulk struct {
	config
	err      error
	builders []*BotScoreCreate
	conflict []sql.ConflictOption
}

// Save creates the BotScore entities in the database.
func (_c *BotScoreCreateBulk) Save(ctx context.Context) ([]*BotScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BotScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BotScoreCreateBulk) SaveX(ctx context.Context) []*BotScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BotScore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BotScoreUpsert) {
//			SetCommunityID(v+v).
//		}).
//		Exec(ctx)
func (_c *BotScoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *BotScoreUpsertBulk {
	_c.conflict = opts
	return &BotScoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BotScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BotScoreCreateBulk) OnConflictColumns(columns ...string) *BotScoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BotScoreUpsertBulk{
		create: _c,
	}
}

// BotScoreUpsertBulk is the builder for "upsert"-ing
// a bulk of BotScore nodes.
type BotScoreUpsertBulk struct {
	create *BotScoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BotScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BotScoreUpsertBulk) UpdateNewValues() *BotScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BotScore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BotScoreUpsertBulk) Ignore() *BotScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BotScoreUpsertBulk) DoNothing() *BotScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BotScoreCreateBulk.OnConflict
// documentation for more info.
func (u *BotScoreUpsertBulk) Update(set func(*BotScoreUpsert)) *BotScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BotScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetCommunityID sets the "community_id" field.
func (u *BotScoreUpsertBulk) SetCommunityID(v string) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateCommunityID() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateCommunityID()
	})
}

// SetOverall sets the "overall" field.
func (u *BotScoreUpsertBulk) SetOverall(v int) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetOverall(v)
	})
}

// AddOverall adds v to the "overall" field.
func (u *BotScoreUpsertBulk) AddOverall(v int) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddOverall(v)
	})
}

// UpdateOverall sets the "overall" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateOverall() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateOverall()
	})
}

// SetGrade sets the "grade" field.
func (u *BotScoreUpsertBulk) SetGrade(v string) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateGrade() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateGrade()
	})
}

// SetSizeCategory sets the "size_category" field.
func (u *BotScoreUpsertBulk) SetSizeCategory(v botscore.SizeCategory) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetSizeCategory(v)
	})
}

// UpdateSizeCategory sets the "size_category" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateSizeCategory() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateSizeCategory()
	})
}

// SetBadActorScore sets the "bad_actor_score" field.
func (u *BotScoreUpsertBulk) SetBadActorScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetBadActorScore(v)
	})
}

// AddBadActorScore adds v to the "bad_actor_score" field.
func (u *BotScoreUpsertBulk) AddBadActorScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddBadActorScore(v)
	})
}

// UpdateBadActorScore sets the "bad_actor_score" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateBadActorScore() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateBadActorScore()
	})
}

// SetReputationScore sets the "reputation_score" field.
func (u *BotScoreUpsertBulk) SetReputationScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetReputationScore(v)
	})
}

// AddReputationScore adds v to the "reputation_score" field.
func (u *BotScoreUpsertBulk) AddReputationScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddReputationScore(v)
	})
}

// UpdateReputationScore sets the "reputation_score" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateReputationScore() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateReputationScore()
	})
}

// SetSecurityScore sets the "security_score" field.
func (u *BotScoreUpsertBulk) SetSecurityScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetSecurityScore(v)
	})
}

// AddSecurityScore adds v to the "security_score" field.
func (u *BotScoreUpsertBulk) AddSecurityScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddSecurityScore(v)
	})
}

// UpdateSecurityScore sets the "security_score" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateSecurityScore() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateSecurityScore()
	})
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (u *BotScoreUpsertBulk) SetAiBehavioralScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetAiBehavioralScore(v)
	})
}

// AddAiBehavioralScore adds v to the "ai_behavioral_score" field.
func (u *BotScoreUpsertBulk) AddAiBehavioralScore(v float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.AddAiBehavioralScore(v)
	})
}

// UpdateAiBehavioralScore sets the "ai_behavioral_score" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateAiBehavioralScore() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateAiBehavioralScore()
	})
}

// SetWeights sets the "weights" field.
func (u *BotScoreUpsertBulk) SetWeights(v map[string]float64) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetWeights(v)
	})
}

// UpdateWeights sets the "weights" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateWeights() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateWeights()
	})
}

// SetCalculatedAt sets the "calculated_at" field.
func (u *BotScoreUpsertBulk) SetCalculatedAt(v time.Time) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetCalculatedAt(v)
	})
}

// UpdateCalculatedAt sets the "calculated_at" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateCalculatedAt() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateCalculatedAt()
	})
}

// SetNextRecalculation sets the "next_recalculation" field.
func (u *BotScoreUpsertBulk) SetNextRecalculation(v time.Time) *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.SetNextRecalculation(v)
	})
}

// UpdateNextRecalculation sets the "next_recalculation" field to the value that was provided on create.
func (u *BotScoreUpsertBulk) UpdateNextRecalculation() *BotScoreUpsertBulk {
	return u.Update(func(s *BotScoreUpsert) {
		s.UpdateNextRecalculation()
	})
}

// Exec executes the query.
func (u *BotScoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BotScoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BotScoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BotScoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
